package internal

import (
	"sort"
)

// ResponseBucket carries the metric set shared by the hourly and weekly
// response-time views.
type ResponseBucket struct {
	Sessions       int     `json:"sessions" yaml:"sessions"`
	AvgQueue       float64 `json:"avg_queue" yaml:"avg_queue"`
	MedianQueue    float64 `json:"median_queue" yaml:"median_queue"`
	AvgDuration    float64 `json:"avg_duration" yaml:"avg_duration"`
	MedianDuration float64 `json:"median_duration" yaml:"median_duration"`
}

// HourlyResponse is the response-time bucket for one hour of day.
type HourlyResponse struct {
	Hour           int `json:"hour" yaml:"hour"`
	ResponseBucket `yaml:",inline"`
}

// WeekdayResponse is the response-time bucket for one weekday.
type WeekdayResponse struct {
	Weekday        string `json:"weekday" yaml:"weekday"`
	WeekdayNum     int    `json:"weekday_num" yaml:"weekday_num"`
	ResponseBucket `yaml:",inline"`
}

// ResponseTimeProfile holds the two independent temporal views: queue
// and session durations grouped by hour of day and by weekday.
type ResponseTimeProfile struct {
	Hourly []HourlyResponse  `json:"hourly" yaml:"hourly"`
	Weekly []WeekdayResponse `json:"weekly" yaml:"weekly"`
}

// ResponseTimeAnalysis groups sessions by hour of day and by weekday.
// Only sessions with a parsed creation timestamp participate. Returns
// nil when no session can be time-bucketed.
func ResponseTimeAnalysis(t *SessionTable) *ResponseTimeProfile {
	if t.Empty() {
		return nil
	}

	hourGroups := make(map[int][]*Session)
	dayGroups := make(map[int][]*Session)
	for i := range t.Sessions {
		s := &t.Sessions[i]
		if !s.HasTime() {
			continue
		}
		hourGroups[s.Hour] = append(hourGroups[s.Hour], s)
		dayGroups[s.WeekdayNum] = append(dayGroups[s.WeekdayNum], s)
	}
	if len(hourGroups) == 0 {
		return nil
	}

	profile := &ResponseTimeProfile{}

	hours := make([]int, 0, len(hourGroups))
	for h := range hourGroups {
		hours = append(hours, h)
	}
	sort.Ints(hours)
	for _, h := range hours {
		profile.Hourly = append(profile.Hourly, HourlyResponse{
			Hour:           h,
			ResponseBucket: responseBucket(hourGroups[h]),
		})
	}

	days := make([]int, 0, len(dayGroups))
	for d := range dayGroups {
		days = append(days, d)
	}
	sort.Ints(days)
	for _, d := range days {
		group := dayGroups[d]
		profile.Weekly = append(profile.Weekly, WeekdayResponse{
			Weekday:        group[0].Weekday,
			WeekdayNum:     d,
			ResponseBucket: responseBucket(group),
		})
	}

	return profile
}

func responseBucket(sessions []*Session) ResponseBucket {
	bucket := ResponseBucket{Sessions: len(sessions)}

	var queues, durations []*float64
	for _, s := range sessions {
		queues = append(queues, s.QueueDuration)
		durations = append(durations, s.Duration)
	}

	queueValues := positiveValues(queues)
	if m, ok := mean(queueValues); ok {
		bucket.AvgQueue = round2(m)
	}
	if m, ok := median(queueValues); ok {
		bucket.MedianQueue = round2(m)
	}

	durationValues := positiveValues(durations)
	if m, ok := mean(durationValues); ok {
		bucket.AvgDuration = round2(m)
	}
	if m, ok := median(durationValues); ok {
		bucket.MedianDuration = round2(m)
	}

	return bucket
}
