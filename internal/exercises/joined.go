package exercises

import (
	"fmt"
	"math"
	"time"

	p "github.com/leengari/relq/internal/query/predicate"
	"github.com/leengari/relq/internal/relation"
)

// queries that combine tables through joins, lookups and sub-results
var joined = []Exercise{
	{
		ID:       "q13-sname-cno-degree",
		Title:    "Student name, course and degree of every score",
		Question: "查询所有学生的Sname、Cno和Degree列",
		Run: func(env Env) (Result, error) {
			s := env.School
			return table(relation.EquiJoin(s.Scores, s.Students, "sno", "sno", relation.JoinInner,
				keep([]string{"cno", "degree"}, "sname")))
		},
	},
	{
		ID:       "q14-sno-cname-degree",
		Title:    "Student number, course name and degree of every score",
		Question: "查询所有学生的Sno、Cname和Degree列",
		Run: func(env Env) (Result, error) {
			s := env.School
			// scores of unknown courses keep a NULL cname
			return table(relation.EquiJoin(s.Scores, s.Courses, "cno", "cno", relation.JoinLeft,
				keep([]string{"sno", "degree"}, "cname")))
		},
	},
	{
		ID:       "q15-sname-cname-degree",
		Title:    "Student name, course name and degree of every score",
		Question: "查询所有学生的Sname、Cname和Degree列",
		Run: func(env Env) (Result, error) {
			s := env.School
			named, err := relation.EquiJoin(s.Scores, s.Students, "sno", "sno", relation.JoinInner,
				keep([]string{"cno", "degree"}, "sname"))
			if err != nil {
				return Result{}, err
			}
			return table(relation.EquiJoin(named, s.Courses, "cno", "cno", relation.JoinLeft,
				keep([]string{"sname", "degree"}, "cname")))
		},
	},
	{
		ID:       "q16-class-95033-average",
		Title:    "Average score of class 95033, rounded",
		Question: "查询“95033”班所选课程的平均分",
		Run: func(env Env) (Result, error) {
			s := env.School
			class := s.Students.Filter(p.Eq("class", 95033))
			theirs, err := relation.SemiJoin(s.Scores, class, "sno", "sno")
			if err != nil {
				return Result{}, err
			}
			avg, err := theirs.Average("degree")
			if err != nil {
				return Result{}, err
			}
			return scalar(int64(math.Round(avg)), nil)
		},
	},
	{
		ID:       "q17-3-105-above-109",
		Title:    "3-105 scores above student 109's",
		Question: "查询选修“3-105”课程的成绩高于“109”号同学成绩的所有同学的记录",
		Run: func(env Env) (Result, error) {
			course := env.School.Scores.Filter(p.Eq("cno", "3-105"))
			ref, err := course.Lookup("sno", 109)
			if err != nil {
				return Result{}, err
			}
			return table(course.Filter(p.Gt("degree", ref.Get("degree"))), nil)
		},
	},
	{
		ID:       "q18-non-top-among-multi",
		Title:    "Scores of students with several courses, except the top score",
		Question: "查询score中选学一门以上课程的同学中分数为非最高分成绩的记录",
		Run: func(env Env) (Result, error) {
			scores := env.School.Scores
			counts, err := scores.CountBy("sno")
			if err != nil {
				return Result{}, err
			}
			several := counts.Keys(func(_ any, n int) bool { return n > 1 })
			rows := scores.Filter(p.In("sno", several...))
			top, err := rows.Max("degree")
			if err != nil {
				return Result{}, err
			}
			return table(rows.Filter(p.Ne("degree", top)), nil)
		},
	},
	{
		ID:       "q19-above-109-3-105",
		Title:    "Scores above student 109's 3-105 score",
		Question: "查询成绩高于学号为“109”、课程号为“3-105”的成绩的所有记录",
		Run: func(env Env) (Result, error) {
			scores := env.School.Scores
			ref, err := scores.First(p.And(p.Eq("sno", 109), p.Eq("cno", "3-105")))
			if err != nil {
				return Result{}, err
			}
			return table(scores.Filter(p.Gt("degree", ref.Get("degree"))), nil)
		},
	},
	{
		ID:       "q20-same-year-as-108",
		Title:    "Students born in the same year as student 108",
		Question: "查询和学号为108的同学同年出生的所有学生的Sno、Sname和Sbirthday列",
		Run: func(env Env) (Result, error) {
			students := env.School.Students
			ref, err := students.Lookup("sno", 108)
			if err != nil {
				return Result{}, err
			}
			born, ok := ref.Get("sbirthday").(time.Time)
			if !ok {
				return Result{}, fmt.Errorf("student 108 has no birthday")
			}
			sameYear := p.Field("sbirthday", func(v any) bool {
				t, ok := v.(time.Time)
				return ok && t.Year() == born.Year()
			})
			return table(students.Filter(sameYear).SelectFields("sno", "sname", "sbirthday"))
		},
	},
	{
		ID:       "q21-scores-of-zhang-xu",
		Title:    "Scores of the courses taught by 张旭",
		Question: "查询“张旭“教师任课的学生成绩",
		Run: func(env Env) (Result, error) {
			s := env.School
			teacher, err := s.Teachers.Lookup("tname", "张旭")
			if err != nil {
				return Result{}, err
			}
			taught := s.Courses.Filter(p.Eq("tno", teacher.Get("tno")))
			return table(relation.SemiJoin(s.Scores, taught, "cno", "cno"))
		},
	},
	{
		ID:       "q22-teachers-of-large-courses",
		Title:    "Teachers of courses taken by more than 5 students",
		Question: "查询选修某课程的同学人数多于5人的教师姓名",
		Run: func(env Env) (Result, error) {
			s := env.School
			counts, err := s.Scores.CountBy("cno")
			if err != nil {
				return Result{}, err
			}
			large := s.Courses.Filter(p.In("cno", counts.Keys(func(_ any, n int) bool { return n > 5 })...))
			teachers, err := relation.SemiJoin(s.Teachers, large, "tno", "tno")
			if err != nil {
				return Result{}, err
			}
			return table(teachers.SelectFields("tname"))
		},
	},
	{
		ID:       "q23-classes-95033-95031",
		Title:    "Students of classes 95033 and 95031",
		Question: "查询95033班和95031班全体学生的记录",
		Run: func(env Env) (Result, error) {
			return table(env.School.Students.Filter(p.In("class", 95033, 95031)), nil)
		},
	},
	{
		ID:       "q24-courses-above-85",
		Title:    "Courses with a score above 85",
		Question: "查询存在有85分以上成绩的课程Cno.",
		Run: func(env Env) (Result, error) {
			courses, err := env.School.Scores.Filter(p.Gt("degree", 85)).DistinctBy("cno")
			if err != nil {
				return Result{}, err
			}
			return table(courses.SelectFields("cno"))
		},
	},
	{
		ID:       "q25-scores-of-cs-department",
		Title:    "Scores of courses taught by the 计算机系 department",
		Question: "查询出“计算机系“教师所教课程的成绩",
		Run: func(env Env) (Result, error) {
			s := env.School
			cs := s.Teachers.Filter(p.Eq("depart", "计算机系"))
			courses, err := relation.SemiJoin(s.Courses, cs, "tno", "tno")
			if err != nil {
				return Result{}, err
			}
			return table(relation.SemiJoin(s.Scores, courses, "cno", "cno"))
		},
	},
	{
		ID:       "q26-tname-prof-cs-ee",
		Title:    "Name and title of 计算机系 and 电子工程系 teachers",
		Question: "查询“计算机系”与“电子工程系“教师的Tname和Prof",
		Run: func(env Env) (Result, error) {
			return table(env.School.Teachers.
				Filter(p.In("depart", "计算机系", "电子工程系")).
				SelectFields("tname", "prof"))
		},
	},
	{
		ID:       "q27-3-105-above-3-245-sorted",
		Title:    "3-105 scores above every 3-245 score, highest first",
		Question: "查询选修编号为“3-105“课程且成绩高于选修编号为“3-245”的同学的Cno、Sno和Degree,并按Degree从高到低次序排序",
		Run: func(env Env) (Result, error) {
			rows, err := above3245(env)
			if err != nil {
				return Result{}, err
			}
			return sorted(rows.SortBy(relation.Desc("degree")))
		},
	},
	{
		ID:       "q28-3-105-above-3-245",
		Title:    "3-105 scores above every 3-245 score",
		Question: "查询选修编号为“3-105”且成绩高于选修编号为“3-245”课程的同学的Cno、Sno和Degree.",
		Run: func(env Env) (Result, error) {
			return table(above3245(env))
		},
	},
}

// above3245 selects the 3-105 scores greater than the best 3-245 score
func above3245(env Env) (relation.Relation, error) {
	scores := env.School.Scores
	best, err := scores.Filter(p.Eq("cno", "3-245")).Max("degree")
	if err != nil {
		return relation.Relation{}, err
	}
	return scores.
		Filter(p.And(p.Eq("cno", "3-105"), p.Gt("degree", best))).
		SelectFields("cno", "sno", "degree")
}
