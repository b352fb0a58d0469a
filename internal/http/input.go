package http

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/example/meeting-planner/internal/application"
	"github.com/example/meeting-planner/internal/scheduler"
)

// fieldParser converts request strings into scheduler values, collecting
// every problem so one response reports all of them.
type fieldParser struct {
	errs map[string]string
}

func (p *fieldParser) fail(field, message string) {
	if p.errs == nil {
		p.errs = make(map[string]string)
	}
	p.errs[field] = message
}

func (p *fieldParser) date(field, value string) scheduler.Date {
	value = strings.TrimSpace(value)
	if value == "" {
		p.fail(field, field+" is required")
		return scheduler.Date{}
	}
	d, err := scheduler.ParseDate(value)
	if err != nil {
		p.fail(field, field+" must be YYYY-MM-DD")
	}
	return d
}

func (p *fieldParser) optionalDate(field, value string) scheduler.Date {
	if strings.TrimSpace(value) == "" {
		return scheduler.Date{}
	}
	return p.date(field, value)
}

func (p *fieldParser) clock(field, value string) scheduler.TimeOfDay {
	value = strings.TrimSpace(value)
	if value == "" {
		p.fail(field, field+" is required")
		return 0
	}
	t, err := scheduler.ParseTimeOfDay(value)
	if err != nil {
		p.fail(field, field+" must be HH:MM")
	}
	return t
}

func (p *fieldParser) minutes(field string, value int) time.Duration {
	if value <= 0 {
		p.fail(field, field+" must be positive")
	}
	return time.Duration(value) * time.Minute
}

func (p *fieldParser) err() error {
	if len(p.errs) == 0 {
		return nil
	}
	return &application.ValidationError{FieldErrors: p.errs}
}

func decodeJSON(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
