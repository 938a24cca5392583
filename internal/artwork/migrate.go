package artwork

import "fmt"

// migrationStep upgrades one stored record shape to the next. Steps must be
// pure and idempotent: migrated data is written back to storage and will
// pass through the chain again on the next load.
type migrationStep struct {
	name  string
	apply func(Record) (Record, bool)
}

var migrationChain = []migrationStep{
	{
		name: "single_image_to_image_urls",
		apply: func(r Record) (Record, bool) {
			if r.LegacyImageURL == "" || len(r.ImageURLs) > 0 {
				return r, false
			}
			r.ImageURLs = []string{r.LegacyImageURL}
			r.LegacyImageURL = ""
			return r, true
		},
	},
}

// migrateRecord runs the full chain over one loaded record and reports
// whether any step changed it.
func migrateRecord(r Record) (Record, bool) {
	changed := false
	for _, step := range migrationChain {
		var stepChanged bool
		r, stepChanged = step.apply(r)
		changed = changed || stepChanged
	}
	return r, changed
}

// validateRecord rejects records that are in neither the current nor a
// recognised legacy shape after migration.
func validateRecord(r Record) error {
	if r.ID == "" {
		return fmt.Errorf("stored artwork has no id")
	}
	if len(r.ImageURLs) == 0 {
		return fmt.Errorf("stored artwork %s has no images", r.ID)
	}
	return nil
}
