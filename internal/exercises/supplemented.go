package exercises

import (
	"time"

	"github.com/leengari/relq/internal/domain/data"
	p "github.com/leengari/relq/internal/query/predicate"
	"github.com/leengari/relq/internal/relation"
)

// the questions the exercise list left open
var supplemented = []Exercise{
	{
		ID:       "q34-classes-with-two-males",
		Title:    "Classes with at least two male students",
		Question: "查询至少有2名男生的班号",
		Run: func(env Env) (Result, error) {
			groups, err := env.School.Students.Filter(p.Eq("ssex", "男")).GroupBy("class")
			if err != nil {
				return Result{}, err
			}
			return table(groups.
				Having(func(g relation.Group) bool { return g.Len() >= 2 }).
				Aggregate("class"))
		},
	},
	{
		ID:       "q35-students-not-wang",
		Title:    "Students whose family name is not 王",
		Question: "查询Student中不姓“王”的同学记录",
		Run: func(env Env) (Result, error) {
			return table(env.School.Students.Filter(p.Not(p.HasPrefix("sname", "王"))), nil)
		},
	},
	{
		ID:       "q36-student-ages",
		Title:    "Name and age of every student",
		Question: "查询Student中每个学生的姓名和年龄",
		Run: func(env Env) (Result, error) {
			return table(env.School.Students.Project(func(rec data.Record) data.Record {
				var years any
				if born, ok := rec.Get("sbirthday").(time.Time); ok {
					years = age(born, env.AsOf)
				}
				return rec.Pick("sname").With("age", years)
			}), nil)
		},
	},
	{
		ID:       "q37-birthday-range",
		Title:    "Latest and earliest student birthday",
		Question: "查询Student中最大和最小的Sbirthday日期值",
		Run: func(env Env) (Result, error) {
			students := env.School.Students
			latest, err := students.Max("sbirthday")
			if err != nil {
				return Result{}, err
			}
			earliest, err := students.Min("sbirthday")
			if err != nil {
				return Result{}, err
			}
			return table(relation.FromMaps(map[string]any{
				"max_sbirthday": latest,
				"min_sbirthday": earliest,
			}), nil)
		},
	},
	{
		ID:       "q38-students-by-class-age",
		Title:    "Students by class, then age, both descending",
		Question: "以班号和年龄从大到小的顺序查询Student中的全部记录",
		Run: func(env Env) (Result, error) {
			// older means an earlier birthday
			return sorted(env.School.Students.SortBy(relation.Desc("class"), relation.Asc("sbirthday")))
		},
	},
	{
		ID:       "q39-male-teachers-courses",
		Title:    "Male teachers and the courses they teach",
		Question: "查询“男”教师及其所上的课程",
		Run: func(env Env) (Result, error) {
			s := env.School
			return table(relation.EquiJoin(s.Teachers.Filter(p.Eq("tsex", "男")), s.Courses,
				"tno", "tno", relation.JoinInner, keep([]string{"tname"}, "cno", "cname")))
		},
	},
	{
		ID:       "q40-top-score-row",
		Title:    "Student, course and degree of the highest score",
		Question: "查询最高分同学的Sno、Cno和Degree列",
		Run: func(env Env) (Result, error) {
			scores := env.School.Scores
			top, err := scores.Max("degree")
			if err != nil {
				return Result{}, err
			}
			return table(scores.Filter(p.Eq("degree", top)).SelectFields("sno", "cno", "degree"))
		},
	},
	{
		ID:       "q41-same-sex-as-li-jun",
		Title:    "Students of the same sex as 李军",
		Question: "查询和“李军”同性别的所有同学的Sname.",
		Run: func(env Env) (Result, error) {
			return table(likeLiJun(env, "ssex"))
		},
	},
	{
		ID:       "q42-same-sex-class-as-li-jun",
		Title:    "Students of the same sex and class as 李军",
		Question: "查询和“李军”同性别并同班的同学Sname.",
		Run: func(env Env) (Result, error) {
			return table(likeLiJun(env, "ssex", "class"))
		},
	},
	{
		ID:       "q43-male-intro-cs-scores",
		Title:    "Scores of male students in 计算机导论",
		Question: "查询所有选修“计算机导论”课程的“男”同学的成绩",
		Run: func(env Env) (Result, error) {
			s := env.School
			course, err := s.Courses.Lookup("cname", "计算机导论")
			if err != nil {
				return Result{}, err
			}
			males := s.Students.Filter(p.Eq("ssex", "男"))
			return table(relation.SemiJoin(s.Scores.Filter(p.Eq("cno", course.Get("cno"))), males, "sno", "sno"))
		},
	},
}

// likeLiJun returns the names of students sharing every given field with 李军
func likeLiJun(env Env, fields ...string) (relation.Relation, error) {
	students := env.School.Students
	ref, err := students.Lookup("sname", "李军")
	if err != nil {
		return relation.Relation{}, err
	}
	same := make([]p.Func, len(fields))
	for i, f := range fields {
		same[i] = p.Eq(f, ref.Get(f))
	}
	return students.Filter(p.And(same...)).SelectFields("sname")
}
