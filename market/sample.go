package market

// sampleOHLC is a fixed demo run: a steady climb that stalls and churns
// just under 100.
var sampleOHLC = [][4]float64{
	{42.5, 55.2, 37.8, 49.6},
	{51.2, 63.4, 48.7, 56.8},
	{59.8, 74.5, 56.2, 62.3},
	{58.3, 69.7, 55.1, 63.5},
	{65.1, 78.2, 61.4, 70.9},
	{71.0, 85.6, 68.2, 76.4},
	{76.8, 90.3, 72.9, 81.2},
	{80.2, 94.7, 76.1, 85.9},
	{85.5, 99.2, 80.4, 90.6},
	{88.7, 98.3, 84.1, 87.9},
	{85.9, 92.6, 82.0, 88.5},
	{90.1, 99.5, 88.3, 94.7},
	{94.4, 100.0, 90.5, 91.7},
	{91.6, 98.2, 89.4, 92.3},
	{92.4, 97.5, 90.6, 94.1},
	{94.2, 99.8, 92.1, 95.6},
	{95.7, 99.6, 93.5, 97.2},
	{97.3, 100.0, 95.2, 98.5},
	{98.6, 100.0, 96.8, 99.7},
	{99.8, 100.0, 98.2, 100.0},
	{99.9, 100.0, 98.9, 99.6},
	{99.7, 100.0, 98.2, 99.8},
	{99.8, 100.0, 98.7, 99.9},
	{99.9, 100.0, 99.1, 99.7},
	{99.7, 100.0, 99.3, 99.5},
	{99.5, 100.0, 99.0, 99.2},
	{99.2, 100.0, 98.5, 99.6},
	{99.6, 100.0, 99.2, 99.4},
	{99.4, 100.0, 98.9, 99.8},
	{99.8, 100.0, 99.5, 99.7},
	{99.7, 100.0, 99.2, 99.9},
	{99.9, 100.0, 99.7, 99.8},
	{99.8, 100.0, 99.4, 99.6},
	{99.6, 100.0, 99.3, 99.7},
	{99.7, 100.0, 99.5, 99.9},
	{99.9, 100.0, 99.6, 99.7},
	{99.7, 100.0, 99.5, 99.8},
	{99.8, 100.0, 99.6, 99.9},
	{99.9, 100.0, 99.7, 99.8},
	{99.8, 100.0, 99.6, 99.7},
	{99.7, 100.0, 99.5, 99.9},
	{99.9, 100.0, 99.7, 99.8},
	{99.8, 100.0, 99.6, 99.7},
	{99.7, 100.0, 99.5, 99.9},
	{99.9, 100.0, 99.7, 99.8},
	{99.8, 100.0, 99.6, 99.7},
	{99.7, 100.0, 99.5, 99.9},
	{99.9, 100.0, 99.7, 99.8},
	{99.8, 100.0, 99.6, 99.7},
	{99.7, 100.0, 99.5, 99.9},
}

// SampleCandles returns a fresh copy of the demo candles with no volume or
// start anchor.
func SampleCandles() []Candle {
	out := make([]Candle, 0, len(sampleOHLC))
	for _, p := range sampleOHLC {
		out = append(out, NewCandleOHLC(p[0], p[1], p[2], p[3]))
	}
	return out
}
