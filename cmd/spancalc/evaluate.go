package main

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/steprange/domain"
	"github.com/iotaledger/hive.go/steprange/steps"
	"github.com/iotaledger/hive.go/steprange/value"
	"github.com/iotaledger/hive.go/steprange/valuerange"
)

var (
	// ErrUnknownDomain is returned if the domain parameter does not name a supported domain.
	ErrUnknownDomain = ierrors.New("unknown domain")
	// ErrUnknownOperation is returned if the op parameter does not name a supported operation.
	ErrUnknownOperation = ierrors.New("unknown operation")
)

// evaluate parses the range of the parameters in the named domain and applies the requested operation to it.
func evaluate(params *parameters) (string, error) {
	switch params.Domain {
	case "int8":
		return evaluateIn(params, value.ParseInt8, domain.Int8)
	case "int16":
		return evaluateIn(params, value.ParseInt16, domain.Int16)
	case "int32":
		return evaluateIn(params, value.ParseInt32, domain.Int32)
	case "int64":
		return evaluateIn(params, value.ParseInt64, domain.Int64)
	case "uint8":
		return evaluateIn(params, value.ParseUint8, domain.Uint8)
	case "uint16":
		return evaluateIn(params, value.ParseUint16, domain.Uint16)
	case "uint32":
		return evaluateIn(params, value.ParseUint32, domain.Uint32)
	case "uint64":
		return evaluateIn(params, value.ParseUint64, domain.Uint64)
	case "float32":
		return evaluateFloat(params, value.ParseFloat32)
	case "float64":
		return evaluateFloat(params, value.ParseFloat64)
	case "decimal":
		step, err := decimal.NewFromString(params.Step)
		if err != nil {
			return "", ierrors.Wrapf(err, "invalid step size '%s'", params.Step)
		}

		return evaluateIn(params, value.ParseDecimal, domain.NewDecimalDomain(step))
	case "date":
		return evaluateIn(params, value.ParseDate, domain.Date)
	case "businessDays":
		holidays := make([]value.Date, 0, len(params.Holidays))
		for _, holiday := range params.Holidays {
			date, err := value.ParseDate(holiday)
			if err != nil {
				return "", ierrors.Wrapf(err, "invalid holiday '%s'", holiday)
			}

			holidays = append(holidays, date)
		}

		return evaluateIn(params, value.ParseDate, domain.NewBusinessDayDomain(domain.WithHolidays(holidays...), domain.WithMaxWalk(params.MaxWalk)))
	case "time":
		granularity, err := domain.GranularityFromString(params.Granularity)
		if err != nil {
			return "", err
		}

		return evaluateIn(params, value.ParseTime, domain.NewTimeDomain(granularity))
	case "duration":
		granularity, err := domain.GranularityFromString(params.Granularity)
		if err != nil {
			return "", err
		}

		return evaluateIn(params, value.ParseDuration, domain.NewDurationDomain(granularity))
	default:
		return "", ierrors.Wrapf(ErrUnknownDomain, "'%s'", params.Domain)
	}
}

func evaluateFloat[T interface {
	value.Value[T]
	constraints.Float
}](params *parameters, parse value.Parser[T]) (string, error) {
	step, err := strconv.ParseFloat(params.Step, 64)
	if err != nil {
		return "", ierrors.Wrapf(err, "invalid step size '%s'", params.Step)
	}

	return evaluateIn(params, parse, domain.NewFloatDomain[T](step))
}

func evaluateIn[T value.Value[T], D domain.Domain[T]](params *parameters, parse value.Parser[T], d D) (string, error) {
	r, err := valuerange.Parse(params.Range, parse)
	if err != nil {
		return "", err
	}

	switch params.Op {
	case "span":
		count, err := steps.Span(r, d)
		if err != nil {
			return "", err
		}

		return count.String(), nil
	case "shift":
		return rangeString(steps.Shift(r, d, params.Offset))
	case "expand":
		return rangeString(steps.Expand(r, d, params.Left, params.Right))
	case "ratio":
		return rangeString(steps.ExpandByRatio(r, d, params.LeftRatio, params.RightRatio))
	case "contains":
		point, err := parse(params.Point)
		if err != nil {
			return "", ierrors.Wrapf(err, "invalid point '%s'", params.Point)
		}

		return strconv.FormatBool(r.Contains(point)), nil
	default:
		return "", ierrors.Wrapf(ErrUnknownOperation, "'%s'", params.Op)
	}
}

func rangeString[T value.Value[T]](r valuerange.ValueRange[T], err error) (string, error) {
	if err != nil {
		return "", err
	}

	return r.String(), nil
}
