package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type Validation struct {
	Errors   []string
	Warnings []string
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// Err joins the validation errors, or returns nil.
func (v Validation) Err() error {
	if v.OK() {
		return nil
	}
	return fmt.Errorf("invalid config: %s", strings.Join(v.Errors, "; "))
}

// NormalizeAndValidate returns a normalized copy of cfg and what is wrong with it.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	var res Validation

	out.Data.Variant = strings.ToLower(strings.TrimSpace(out.Data.Variant))
	out.Data.Path = expandHome(strings.TrimSpace(out.Data.Path))
	out.Storage.DBPath = expandHome(strings.TrimSpace(out.Storage.DBPath))
	out.Storage.PrefsPath = expandHome(strings.TrimSpace(out.Storage.PrefsPath))
	out.Log.Path = expandHome(strings.TrimSpace(out.Log.Path))
	out.Defaults.OnlineOrder = normalizeChoice(out.Defaults.OnlineOrder)
	out.Defaults.TableBooking = normalizeChoice(out.Defaults.TableBooking)
	out.Defaults.Mood = strings.TrimSpace(out.Defaults.Mood)
	out.Defaults.Area = strings.TrimSpace(out.Defaults.Area)

	switch out.Data.Variant {
	case "nearby":
		if out.Data.Path != "" {
			res.addWarn("data.path %q is ignored for the nearby variant", out.Data.Path)
		}
	case "dining":
		if out.Data.Path == "" {
			res.addErr("data.path is required for the dining variant")
		}
	default:
		res.addErr("data.variant must be nearby or dining, got %q", out.Data.Variant)
	}

	if out.Display.TopN < 0 {
		res.addErr("display.top_n must be >= 0, got %d", out.Display.TopN)
	}
	if out.Display.BudgetStep <= 0 {
		res.addWarn("display.budget_step %v is not positive, using 50", out.Display.BudgetStep)
		out.Display.BudgetStep = 50
	}

	if out.Defaults.MinRating < 0 || out.Defaults.MinRating > 5 {
		res.addErr("defaults.min_rating must be within [0, 5], got %v", out.Defaults.MinRating)
	}
	if out.Defaults.MaxCost < 0 {
		res.addErr("defaults.max_cost must be >= 0, got %v", out.Defaults.MaxCost)
	}
	for _, f := range []struct{ name, value string }{
		{"defaults.online_order", out.Defaults.OnlineOrder},
		{"defaults.table_booking", out.Defaults.TableBooking},
	} {
		if f.value != "all" && f.value != "yes" && f.value != "no" {
			res.addErr("%s must be all, yes or no, got %q", f.name, f.value)
		}
	}

	return out, res
}

// expandHome replaces a leading "~/" with the user's home directory.
func expandHome(p string) string {
	if !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, p[2:])
}

func normalizeChoice(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "all"
	}
	return s
}
