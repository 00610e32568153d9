package exercises

import (
	p "github.com/leengari/relq/internal/query/predicate"
	"github.com/leengari/relq/internal/relation"
)

// single-table selections, sorts and aggregates
var basic = []Exercise{
	{
		ID:       "q01-student-columns",
		Title:    "Name, sex and class of every student",
		Question: "查询student中的所有记录的sname、Ssex和class列",
		Run: func(env Env) (Result, error) {
			return table(env.School.Students.SelectFields("sname", "ssex", "class"))
		},
	},
	{
		ID:       "q02-distinct-departs",
		Title:    "Distinct teacher departments",
		Question: "查询教师所有的单位中不重复的Depart列",
		Run: func(env Env) (Result, error) {
			unique, err := env.School.Teachers.DistinctBy("depart")
			if err != nil {
				return Result{}, err
			}
			return table(unique.SelectFields("depart"))
		},
	},
	{
		ID:       "q03-score-60-80",
		Title:    "Scores strictly between 60 and 80",
		Question: "查询Score中成绩在60到80之间的所有记录",
		Run: func(env Env) (Result, error) {
			return table(env.School.Scores.Filter(p.Between("degree", 60, 80)), nil)
		},
	},
	{
		ID:       "q04-score-85-86-88",
		Title:    "Scores of 85, 86 or 88",
		Question: "查询Score中成绩为85，86或88的记录",
		Run: func(env Env) (Result, error) {
			return table(env.School.Scores.Filter(p.In("degree", 85, 86, 88)), nil)
		},
	},
	{
		ID:       "q05-class-95031-or-female",
		Title:    "Students of class 95031 or female",
		Question: "查询Student中“95031”班或性别为“女”的同学记录",
		Run: func(env Env) (Result, error) {
			return table(env.School.Students.Filter(p.Or(p.Eq("class", 95031), p.Eq("ssex", "女"))), nil)
		},
	},
	{
		ID:       "q06-students-by-class-desc",
		Title:    "Students by class, descending",
		Question: "以Class降序查询Student的所有记录",
		Run: func(env Env) (Result, error) {
			return sorted(env.School.Students.SortBy(relation.Desc("class")))
		},
	},
	{
		ID:       "q07-scores-by-cno-degree",
		Title:    "Scores by course ascending, then degree descending",
		Question: "以Cno升序、Degree降序查询Score的所有记录",
		Run: func(env Env) (Result, error) {
			return sorted(env.School.Scores.SortBy(relation.Asc("cno"), relation.Desc("degree")))
		},
	},
	{
		ID:       "q08-count-class-95031",
		Title:    "Number of students in class 95031",
		Question: "查询“95031”班的学生人数",
		Run: func(env Env) (Result, error) {
			return scalar(env.School.Students.Filter(p.Eq("class", 95031)).Count(), nil)
		},
	},
	{
		ID:       "q09-top-score-sno-cno",
		Title:    "Student and course of the highest score",
		Question: "查询Score中的最高分的学生学号和课程号",
		Run: func(env Env) (Result, error) {
			scores := env.School.Scores
			top, err := scores.Max("degree")
			if err != nil {
				return Result{}, err
			}
			return table(scores.Filter(p.Eq("degree", top)).SelectFields("sno", "cno"))
		},
	},
	{
		ID:       "q10-average-3-105",
		Title:    "Average score of course 3-105",
		Question: "查询‘3-105’号课程的平均分",
		Run: func(env Env) (Result, error) {
			return scalar(env.School.Scores.Filter(p.Eq("cno", "3-105")).Average("degree"))
		},
	},
	{
		ID:       "q11-popular-3xx-average",
		Title:    "Average score of 3-xxx courses taken by at least 5 students",
		Question: "查询Score中至少有5名学生选修的并以3开头的课程的平均分数",
		Run: func(env Env) (Result, error) {
			groups, err := env.School.Scores.GroupBy("cno")
			if err != nil {
				return Result{}, err
			}
			popular := groups.Having(func(g relation.Group) bool {
				cno, _ := g.Key.(string)
				return g.Len() >= 5 && len(cno) > 0 && cno[0] == '3'
			})
			return table(popular.Aggregate("cno", relation.AverageOf("degree", "average")))
		},
	},
	{
		ID:       "q12-sno-min-gt70-max-lt90",
		Title:    "Students whose lowest score is above 70 and highest below 90",
		Question: "查询最低分大于70，最高分小于90的Sno列",
		Run: func(env Env) (Result, error) {
			groups, err := env.School.Scores.GroupBy("sno")
			if err != nil {
				return Result{}, err
			}
			bounds, err := groups.Aggregate("sno",
				relation.MinOf("degree", "lowest"),
				relation.MaxOf("degree", "highest"),
			)
			if err != nil {
				return Result{}, err
			}
			return table(bounds.Filter(p.And(p.Gt("lowest", 70), p.Lt("highest", 90))).SelectFields("sno"))
		},
	},
}
