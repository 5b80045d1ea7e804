package main

// parameters contains the command line parameters of spancalc. They can also be provided by a config file or by
// environment variables with the SPANCALC prefix.
type parameters struct {
	Domain      string   `default:"int64" usage:"the domain of the range (int8, int16, int32, int64, uint8, uint16, uint32, uint64, float32, float64, decimal, date, businessDays, time, duration)"`
	Range       string   `usage:"the range literal, i.e. \"[10, 20)\" or \"[2024-03-01, )\""`
	Op          string   `default:"span" usage:"the operation to evaluate (span, shift, expand, ratio, contains)"`
	Offset      int64    `usage:"the number of steps to shift the range by"`
	Left        int64    `usage:"the number of steps to move the start of the range outward"`
	Right       int64    `usage:"the number of steps to move the end of the range outward"`
	LeftRatio   float64  `usage:"the ratio of the span to move the start of the range outward"`
	RightRatio  float64  `usage:"the ratio of the span to move the end of the range outward"`
	Point       string   `usage:"the value to test for containment"`
	Step        string   `default:"1" usage:"the step size of the float and decimal domains"`
	Granularity string   `default:"day" usage:"the granularity of the time and duration domains"`
	Holidays    []string `usage:"the holidays (YYYY-MM-DD) of the businessDays domain"`
	MaxWalk     int64    `default:"366000" usage:"the maximum number of calendar days a businessDays operation may visit (0 = unlimited)"`
}
