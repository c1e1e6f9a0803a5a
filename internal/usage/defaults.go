package usage

import "time"

const resetPeriod = 7 * 24 * time.Hour

func defaultUsage() Usage {
	return Usage{
		Plan:     "Starter",
		Limit:    10,
		Used:     0,
		ResetsAt: time.Now().UTC().Add(resetPeriod),
	}
}
