package testutil

import (
	"github.com/leengari/relq/internal/domain/data"
	"github.com/leengari/relq/internal/relation"
)

// Students returns the school student table in fixture order
func Students() relation.Relation {
	return relation.FromMaps(
		student(108, "曾华", "男", "1999-09-01", 95033),
		student(105, "匡明", "男", "1975-10-02", 95031),
		student(107, "王丽", "女", "1976-01-23", 95033),
		student(101, "李军", "男", "1976-02-20", 95033),
		student(109, "王芳", "女", "1975-02-10", 95031),
		student(103, "陆君", "男", "1974-06-03", 95031),
	).Named("students")
}

// Teachers returns the school teacher table in fixture order
func Teachers() relation.Relation {
	return relation.FromMaps(
		teacher(804, "李诚", "男", "1958-12-02", "副教授", "计算机系"),
		teacher(856, "张旭", "男", "1969-03-12", "讲师", "电子工程系"),
		teacher(825, "王萍", "女", "1972-05-05", "助教", "计算机系"),
		teacher(831, "刘冰", "女", "1977-08-14", "助教", "电子工程系"),
	).Named("teachers")
}

// Courses returns the school course table. Course 6-106 is referenced by a
// score but deliberately absent here.
func Courses() relation.Relation {
	return relation.FromMaps(
		map[string]any{"cno": "3-105", "cname": "计算机导论", "tno": int64(825)},
		map[string]any{"cno": "3-245", "cname": "操作系统", "tno": int64(804)},
		map[string]any{"cno": "6-166", "cname": "数据电路", "tno": int64(856)},
	).Named("courses")
}

// Scores returns the school score table in fixture order
func Scores() relation.Relation {
	return relation.FromMaps(
		score(103, "3-245", 86),
		score(105, "3-245", 75),
		score(109, "3-245", 68),
		score(103, "3-105", 92),
		score(105, "3-105", 88),
		score(109, "3-105", 76),
		score(101, "3-105", 64),
		score(107, "3-105", 91),
		score(108, "3-105", 78),
		score(101, "6-166", 85),
		score(107, "6-106", 79),
		score(108, "6-166", 81),
	).Named("scores")
}

func student(sno int64, name, sex, birthday string, class int64) map[string]any {
	return map[string]any{
		"sno":       sno,
		"sname":     name,
		"ssex":      sex,
		"sbirthday": data.MustDate(birthday),
		"class":     class,
	}
}

func teacher(tno int64, name, sex, birthday, prof, depart string) map[string]any {
	return map[string]any{
		"tno":       tno,
		"tname":     name,
		"tsex":      sex,
		"tbirthday": data.MustDate(birthday),
		"prof":      prof,
		"depart":    depart,
	}
}

func score(sno int64, cno string, degree int64) map[string]any {
	return map[string]any{"sno": sno, "cno": cno, "degree": degree}
}
