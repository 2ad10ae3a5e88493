package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

func (v Validation) Error() string {
	return "config validation failed:\n- " + strings.Join(v.Errors, "\n- ")
}

// NormalizeAndValidate returns a trimmed copy of cfg and what is wrong
// with it.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	var res Validation

	out.App.Host = strings.TrimSpace(out.App.Host)
	out.API.BaseURL = strings.TrimSuffix(strings.TrimSpace(out.API.BaseURL), "/")
	out.Display.Timezone = strings.TrimSpace(out.Display.Timezone)
	out.Backend.DBPath = strings.TrimSpace(out.Backend.DBPath)

	if out.App.Port <= 0 || out.App.Port > 65535 {
		res.addErr("app.port must be 1..65535")
	}

	if u, err := url.Parse(out.API.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		res.addErr("api.base_url must be an absolute http(s) URL, got %q", out.API.BaseURL)
	} else if u.Scheme != "http" && u.Scheme != "https" {
		res.addErr("api.base_url scheme must be http or https")
	}
	if out.API.TimeoutSeconds < 0 {
		res.addErr("api.timeout_seconds must be >= 0")
	}
	if out.API.RatePerSecond < 0 {
		res.addErr("api.rate_per_second must be >= 0")
	}

	if out.Refresh.IntervalMS <= 0 {
		res.addErr("refresh.interval_ms must be > 0")
	} else if out.Refresh.IntervalMS < 10_000 {
		res.addWarn("refresh.interval_ms is very low (%d) and will hammer the API.", out.Refresh.IntervalMS)
	}
	if out.Refresh.CompanyLimit <= 0 {
		res.addErr("refresh.company_limit must be > 0")
	}
	if out.Refresh.OpportunityLimit <= 0 {
		res.addErr("refresh.opportunity_limit must be > 0")
	}

	if out.Display.DateLayout == "" || out.Display.DateTimeLayout == "" {
		res.addErr("display.date_layout and display.datetime_layout are required")
	}
	switch out.Display.Timezone {
	case "", "Local":
	default:
		if _, err := time.LoadLocation(out.Display.Timezone); err != nil {
			res.addWarn("display.timezone %q is unknown; using Local", out.Display.Timezone)
		}
	}

	if out.Backend.Embedded && out.Backend.DBPath == "" {
		res.addErr("backend.db_path is required when backend.embedded=true")
	}
	if !out.Backend.Embedded && out.Backend.SeedDemo {
		res.addWarn("backend.seed_demo has no effect unless backend.embedded=true")
	}

	return out, res
}
