package logging

import (
	"time"
)

// Common field constructors
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Float64(key string, value float64) Field {
	return Field{Key: key, Value: value}
}

func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

func Error(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

func Any(key string, value any) Field {
	return Field{Key: key, Value: value}
}

func Component(name string) Field {
	return String("component", name)
}

func Operation(op string) Field {
	return String("operation", op)
}

func Latency(d time.Duration) Field {
	return Duration("latency", d)
}

func Count(n int) Field {
	return Int("count", n)
}

func Path(p string) Field {
	return String("path", p)
}

// Flight graph fields

func AirportID(id int) Field {
	return Int("airport_id", id)
}

func IATA(code string) Field {
	return String("iata", code)
}

func Criterion(name string) Field {
	return String("criterion", name)
}

func QueryID(id string) Field {
	return String("query_id", id)
}

// Dataset names the input being ingested ("airports" or "routes").
func Dataset(name string) Field {
	return String("dataset", name)
}

func Rows(n int) Field {
	return Int("rows", n)
}

func Source(path string) Field {
	return String("source", path)
}

func Hops(n int) Field {
	return Int("hops", n)
}

func Weight(w float64) Field {
	return Float64("weight", w)
}
