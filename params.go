package bustime

// Parameter is a query parameter key the Bustime API understands. The zero
// value is not a valid parameter.
type Parameter int

const (
	// ParamRoute names a route by its code, e.g. "1" or "X9".
	ParamRoute Parameter = iota + 1

	// ParamDirection names a direction travelled by a route, e.g. "Northbound".
	ParamDirection

	// ParamStopID names one or more stops by id, comma separated.
	ParamStopID

	// ParamLimit caps the number of predictions returned.
	ParamLimit
)

// Key returns the parameter's wire key, e.g. "rt" for ParamRoute.
func (p Parameter) Key() string {
	switch p {
	case ParamRoute:
		return "rt"
	case ParamDirection:
		return "dir"
	case ParamStopID:
		return "stpid"
	case ParamLimit:
		return "top"
	}
	return ""
}

func (p Parameter) String() string { return p.Key() }

// ParamValue is one query parameter and its value. Request parameters are
// carried as a slice so the caller's ordering survives into the URL.
type ParamValue struct {
	Param Parameter
	Value string
}

// Params builds an ordered parameter list. It exists so call sites read as
// Params(P(ParamRoute, "1"), P(ParamDirection, "Northbound")).
func Params(pairs ...ParamValue) []ParamValue { return pairs }

// P pairs a parameter with its value.
func P(param Parameter, value string) ParamValue {
	return ParamValue{Param: param, Value: value}
}
