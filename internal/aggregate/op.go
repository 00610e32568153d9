package aggregate

import (
	"fmt"

	"github.com/leengari/relq/internal/domain/data"
)

// Op selects the reduction applied to a group of records
type Op int

const (
	OpCount Op = iota
	OpSum
	OpAverage
	OpMax
	OpMin
)

// String returns the SQL-style name of the reduction
func (op Op) String() string {
	switch op {
	case OpCount:
		return "COUNT"
	case OpSum:
		return "SUM"
	case OpAverage:
		return "AVG"
	case OpMax:
		return "MAX"
	case OpMin:
		return "MIN"
	default:
		return "UNKNOWN"
	}
}

// Apply runs op over field of rs.
// OpCount ignores field and returns the number of records as int64.
func Apply(op Op, rs []data.Record, field string) (any, error) {
	switch op {
	case OpCount:
		return int64(len(rs)), nil
	case OpSum:
		return SumField(rs, field)
	case OpAverage:
		return AverageField(rs, field)
	case OpMax:
		return MaxField(rs, field)
	case OpMin:
		return MinField(rs, field)
	default:
		return nil, fmt.Errorf("unsupported aggregate %d", int(op))
	}
}
