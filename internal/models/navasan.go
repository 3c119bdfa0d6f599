package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// NavasanItem is a single item of the Navasan /latest/ response.
type NavasanItem struct {
	Value     string      `json:"value"`
	Change    json.Number `json:"change"`
	Timestamp int64       `json:"timestamp"`
	Date      string      `json:"date"`
}

// NavasanRate is the Navasan /latest/?item=usd response.
type NavasanRate struct {
	USD *NavasanItem `json:"usd"`
}

// NavasanUsage is the Navasan /usage/ response. Counters arrive as numeric strings.
type NavasanUsage struct {
	MonthlyUsage string `json:"monthly_usage"`
	DailyUsage   string `json:"daily_usage"`
	HourlyUsage  string `json:"hourly_usage"`
}

// ParseCounter converts a Navasan numeric string into an int.
// Empty strings are treated as zero.
func ParseCounter(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}
