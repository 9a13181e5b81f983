package internal

import (
	"sort"
)

// HourVolume is the message volume for one hour of day, pivoted by
// direction. Total counts only messages with a known direction, matching
// the pivot.
type HourVolume struct {
	Hour     int `json:"hour" yaml:"hour"`
	Inbound  int `json:"inbound" yaml:"inbound"`
	Outbound int `json:"outbound" yaml:"outbound"`
	Total    int `json:"total" yaml:"total"`
}

// HeatmapCell is one (weekday, hour) volume cell for heatmap rendering.
type HeatmapCell struct {
	WeekdayNum int `json:"weekday_num" yaml:"weekday_num"`
	Hour       int `json:"hour" yaml:"hour"`
	Volume     int `json:"volume" yaml:"volume"`
}

// PeakVolumeProfile is the peak-volume view: hourly direction pivot,
// the peak-hour set, the threshold that defined it, and the weekday/hour
// heatmap matrix.
type PeakVolumeProfile struct {
	Hourly    []HourVolume  `json:"hourly" yaml:"hourly"`
	PeakHours []int         `json:"peak_hours" yaml:"peak_hours"`
	Threshold float64       `json:"threshold" yaml:"threshold"`
	Heatmap   []HeatmapCell `json:"heatmap" yaml:"heatmap"`
}

// PeakVolumeAnalysis pivots message volume by hour and direction and
// marks as peak every hour whose total is at or above the 80th
// percentile of the hourly totals (linear-interpolated percentile).
// Returns nil when no message carries a usable timestamp.
func PeakVolumeAnalysis(t *MessageTable) *PeakVolumeProfile {
	if t.Empty() {
		return nil
	}

	hourly := make(map[int]*HourVolume)
	heatmap := make(map[[2]int]int)
	for i := range t.Messages {
		m := &t.Messages[i]
		if !m.HasTime() {
			continue
		}

		hv := hourly[m.Hour]
		if hv == nil {
			hv = &HourVolume{Hour: m.Hour}
			hourly[m.Hour] = hv
		}
		switch m.Direction {
		case DirectionInbound:
			hv.Inbound++
			hv.Total++
		case DirectionOutbound:
			hv.Outbound++
			hv.Total++
		}

		heatmap[[2]int{m.WeekdayNum, m.Hour}]++
	}
	if len(hourly) == 0 {
		return nil
	}

	profile := &PeakVolumeProfile{}

	hours := make([]int, 0, len(hourly))
	for h := range hourly {
		hours = append(hours, h)
	}
	sort.Ints(hours)

	totals := make([]float64, 0, len(hours))
	for _, h := range hours {
		profile.Hourly = append(profile.Hourly, *hourly[h])
		totals = append(totals, float64(hourly[h].Total))
	}

	threshold, _ := percentile(totals, 0.8)
	profile.Threshold = threshold
	for _, h := range hours {
		if float64(hourly[h].Total) >= threshold {
			profile.PeakHours = append(profile.PeakHours, h)
		}
	}

	cells := make([][2]int, 0, len(heatmap))
	for cell := range heatmap {
		cells = append(cells, cell)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i][0] != cells[j][0] {
			return cells[i][0] < cells[j][0]
		}
		return cells[i][1] < cells[j][1]
	})
	for _, cell := range cells {
		profile.Heatmap = append(profile.Heatmap, HeatmapCell{
			WeekdayNum: cell[0],
			Hour:       cell[1],
			Volume:     heatmap[cell],
		})
	}

	return profile
}
