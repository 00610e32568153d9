package exercises

import (
	"github.com/leengari/relq/internal/domain/data"
	p "github.com/leengari/relq/internal/query/predicate"
	"github.com/leengari/relq/internal/relation"
)

// unions, per-group comparisons and existence joins
var combined = []Exercise{
	{
		ID:       "q29-people-name-sex-birthday",
		Title:    "Name, sex and birthday of every student and teacher",
		Question: "查询所有教师和同学的name、sex和birthday.",
		Run: func(env Env) (Result, error) {
			return table(people(env, p.All(), p.All()))
		},
	},
	{
		ID:       "q30-female-people",
		Title:    "Name, sex and birthday of female students and teachers",
		Question: "查询所有“女”教师和“女”同学的name、sex和birthday.",
		Run: func(env Env) (Result, error) {
			return table(people(env, p.Eq("ssex", "女"), p.Eq("tsex", "女")))
		},
	},
	{
		ID:       "q31-below-course-average",
		Title:    "Scores below their course average",
		Question: "查询成绩比该课程平均成绩低的同学的成绩",
		Run: func(env Env) (Result, error) {
			scores := env.School.Scores
			groups, err := scores.GroupBy("cno")
			if err != nil {
				return Result{}, err
			}
			averages, err := groups.Aggregate("cno", relation.AverageOf("degree", "average"))
			if err != nil {
				return Result{}, err
			}
			withAvg, err := relation.EquiJoin(scores, averages, "cno", "cno", relation.JoinInner,
				func(l, r data.Record) data.Record { return l.With("average", r.Get("average")) })
			if err != nil {
				return Result{}, err
			}
			below := withAvg.Filter(func(rec data.Record) bool {
				return data.Comparable(rec.Get("degree"), rec.Get("average")) &&
					data.Compare(rec.Get("degree"), rec.Get("average")) < 0
			})
			return table(below.SelectFields("sno", "cno", "degree"))
		},
	},
	{
		ID:       "q32-teaching-teachers",
		Title:    "Name and department of teachers who teach a course",
		Question: "查询所有任课教师的Tname和Depart.",
		Run: func(env Env) (Result, error) {
			s := env.School
			teaching, err := relation.SemiJoin(s.Teachers, s.Courses, "tno", "tno")
			if err != nil {
				return Result{}, err
			}
			return table(teaching.SelectFields("tname", "depart"))
		},
	},
	{
		ID:       "q33-idle-teachers",
		Title:    "Name and department of teachers who teach nothing",
		Question: "查询所有未讲课的教师的Tname和Depart.",
		Run: func(env Env) (Result, error) {
			s := env.School
			idle, err := relation.AntiJoin(s.Teachers, s.Courses, "tno", "tno")
			if err != nil {
				return Result{}, err
			}
			return table(idle.SelectFields("tname", "depart"))
		},
	},
}

// people concatenates the matching students and teachers, each keeping its
// own field names
func people(env Env, students, teachers p.Func) (relation.Relation, error) {
	s, err := env.School.Students.Filter(students).SelectFields("sname", "ssex", "sbirthday")
	if err != nil {
		return relation.Relation{}, err
	}
	t, err := env.School.Teachers.Filter(teachers).SelectFields("tname", "tsex", "tbirthday")
	if err != nil {
		return relation.Relation{}, err
	}
	return relation.UnionAll(s, t), nil
}
