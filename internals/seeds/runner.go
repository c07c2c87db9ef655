package seeds

import (
	"gorm.io/gorm"

	"mentoring_backend/internals/seeds/crm"
)

// RunAllSeeds loads dataPath (embedded sample data when empty) and inserts what is missing.
func RunAllSeeds(db *gorm.DB, dataPath string) (crm.Result, error) {
	f, err := crm.Load(dataPath)
	if err != nil {
		return crm.Result{}, err
	}
	return crm.Seed(db, f)
}
