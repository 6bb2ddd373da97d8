package catering

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/LumpsRGood/cateringcalulator/internal/app"
	"github.com/LumpsRGood/cateringcalulator/internal/catalog"
	"github.com/LumpsRGood/cateringcalulator/internal/db"
)

func withDB(run func(*sql.DB) error) error {
	path, err := resolveDBPath()
	if err != nil {
		return err
	}
	if err := app.EnsureDBDir(path); err != nil {
		return err
	}
	sqldb, err := db.Open(path)
	if err != nil {
		return err
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		return err
	}
	return run(sqldb)
}

func resolveDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	return app.DefaultDBPath()
}

func parseInt64Arg(name, value string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, value)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%s must be > 0", name)
	}
	return v, nil
}

func parseDateTime(date, timeStr string) (time.Time, error) {
	date = strings.TrimSpace(date)
	timeStr = strings.TrimSpace(timeStr)
	if date == "" || timeStr == "" {
		return time.Time{}, fmt.Errorf("both --date and --time are required")
	}
	t, err := time.ParseInLocation("2006-01-02 15:04", date+" "+timeStr, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date/--time (expected YYYY-MM-DD and HH:MM)")
	}
	return t, nil
}

// Short flag spellings for combo modifiers.
var tierAliases = map[string]string{
	"small":  catalog.TierSmall,
	"medium": catalog.TierMedium,
	"large":  catalog.TierLarge,
}

var proteinAliases = map[string]string{
	"bacon":   catalog.ProteinBacon,
	"sausage": catalog.ProteinSausage,
	"ham":     catalog.ProteinHam,
}

var griddleAliases = map[string]string{
	"pancakes":     catalog.GriddlePancakes,
	"french-toast": catalog.GriddleFrenchToast,
}

func resolveAlias(name string, aliases map[string]string, value string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if full, ok := aliases[v]; ok {
		return full, nil
	}
	// Accept the full catalog spelling too.
	for _, full := range aliases {
		if v == full {
			return full, nil
		}
	}
	options := make([]string, 0, len(aliases))
	for k := range aliases {
		options = append(options, k)
	}
	return "", fmt.Errorf("invalid %s %q (one of: %s)", name, value, strings.Join(options, ", "))
}
