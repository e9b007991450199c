package util

import "math"

// CalculateAverage returns the mean waiting and turnaround times, each rounded to two
// decimal places. Both are 0 when there are no processes.
func CalculateAverage(waitingTimes, turnAroundTimes []int) (averageWaitingTime, averageTurnAroundTime float64) {
	return Round2(mean(waitingTimes)), Round2(mean(turnAroundTimes))
}

// Round2 rounds x to two decimal places, halves away from zero.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func mean(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum int
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}
