package crm

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	contactModel "mentoring_backend/internals/features/contacts/contacts/model"
	companyDTO "mentoring_backend/internals/features/partners/companies/dto"
	organizationDTO "mentoring_backend/internals/features/partners/organizations/dto"
	helper "mentoring_backend/internals/helpers"
	"mentoring_backend/internals/logging"
)

//go:embed data_crm.yaml
var defaultData []byte

type ContactSeed struct {
	Type    contactModel.ContactType `yaml:"type"`
	Name    string                   `yaml:"name"`
	Email   string                   `yaml:"email"`
	Status  string                   `yaml:"status"`
	Company string                   `yaml:"company"`
	Details map[string]any           `yaml:"details"`
}

type CompanySeed struct {
	Name            string   `yaml:"name"`
	Industry        string   `yaml:"industry"`
	Size            string   `yaml:"size"`
	ContactPerson   string   `yaml:"contact_person"`
	Email           string   `yaml:"email"`
	Website         string   `yaml:"website"`
	CooperationType []string `yaml:"cooperation_type"`
	Status          string   `yaml:"status"`
}

type OrganizationSeed struct {
	Name          string `yaml:"name"`
	ContactPerson string `yaml:"contact_person"`
	Email         string `yaml:"email"`
	Status        string `yaml:"status"`
}

type SeedFile struct {
	Companies     []CompanySeed      `yaml:"companies"`
	Organizations []OrganizationSeed `yaml:"organizations"`
	Contacts      []ContactSeed      `yaml:"contacts"`
}

// Load reads path, or the embedded sample data when path is empty.
func Load(path string) (*SeedFile, error) {
	raw := defaultData
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read seed file: %w", err)
		}
		raw = b
	}
	var f SeedFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decode seed file: %w", err)
	}
	return &f, f.Validate()
}

// Validate runs the same checks the API applies to request bodies.
func (f *SeedFile) Validate() error {
	v := helper.NewValidator()
	companies := map[string]bool{}
	for i, c := range f.Companies {
		req := c.request()
		if err := v.Struct(&req); err != nil {
			return fmt.Errorf("companies[%d] %q: %w", i, c.Name, helper.ValidationError(err))
		}
		companies[c.Name] = true
	}
	for i, o := range f.Organizations {
		req := o.request()
		if err := v.Struct(&req); err != nil {
			return fmt.Errorf("organizations[%d] %q: %w", i, o.Name, helper.ValidationError(err))
		}
	}
	for i, c := range f.Contacts {
		if !c.Type.Valid() {
			return fmt.Errorf("contacts[%d]: unknown type %q", i, c.Type)
		}
		if c.Name == "" || v.Var(c.Email, "required,email") != nil {
			return fmt.Errorf("contacts[%d]: name and a valid email are required", i)
		}
		if c.Company != "" && !companies[c.Company] {
			return fmt.Errorf("contacts[%d]: unknown company %q", i, c.Company)
		}
		d, err := c.details()
		if err != nil {
			return fmt.Errorf("contacts[%d] %q: %w", i, c.Email, err)
		}
		if err := v.Struct(d); err != nil {
			return fmt.Errorf("contacts[%d] %q: %w", i, c.Email, helper.ValidationError(err))
		}
	}
	return nil
}

func (c CompanySeed) request() companyDTO.CreateCompanyRequest {
	req := companyDTO.CreateCompanyRequest{
		Name:            c.Name,
		Industry:        &c.Industry,
		Size:            &c.Size,
		ContactPerson:   &c.ContactPerson,
		Email:           &c.Email,
		Website:         &c.Website,
		CooperationType: c.CooperationType,
		Status:          &c.Status,
	}
	req.Normalize()
	return req
}

func (o OrganizationSeed) request() organizationDTO.CreateOrganizationRequest {
	req := organizationDTO.CreateOrganizationRequest{
		Name:          o.Name,
		ContactPerson: &o.ContactPerson,
		Email:         &o.Email,
		Status:        &o.Status,
	}
	req.Normalize()
	return req
}

func (c ContactSeed) details() (contactModel.Details, error) {
	raw, err := json.Marshal(c.Details)
	if err != nil {
		return nil, err
	}
	if c.Details == nil {
		raw = []byte("{}")
	}
	return contactModel.DecodeDetails(c.Type, raw)
}

type Result struct {
	Companies     int
	Organizations int
	Contacts      int
}

// Seed inserts what is missing: companies and organizations are matched by name,
// contacts by email. Running it twice inserts nothing the second time.
func Seed(db *gorm.DB, f *SeedFile) (Result, error) {
	var res Result
	err := db.Transaction(func(tx *gorm.DB) error {
		companyIDs := map[string]int64{}
		for _, c := range f.Companies {
			id, created, err := upsertByName(tx, "partner_companies", c.Name, func() (int64, error) {
				m := c.request().ToModel()
				err := tx.Create(&m).Error
				return m.ID, err
			})
			if err != nil {
				return fmt.Errorf("company %q: %w", c.Name, err)
			}
			companyIDs[c.Name] = id
			if created {
				res.Companies++
			}
		}

		for _, o := range f.Organizations {
			_, created, err := upsertByName(tx, "organizations", o.Name, func() (int64, error) {
				m := o.request().ToModel()
				err := tx.Create(&m).Error
				return m.ID, err
			})
			if err != nil {
				return fmt.Errorf("organization %q: %w", o.Name, err)
			}
			if created {
				res.Organizations++
			}
		}

		for _, c := range f.Contacts {
			d, err := c.details()
			if err != nil {
				return err
			}
			encoded, err := contactModel.EncodeDetails(d)
			if err != nil {
				return err
			}
			m := contactModel.ContactModel{
				Type:    c.Type,
				Name:    helper.SanitizeText(c.Name),
				Email:   strings.ToLower(strings.TrimSpace(c.Email)),
				Status:  c.Status,
				Details: datatypes.JSON(encoded),
			}
			if m.Status == "" {
				m.Status = "new_lead"
			}
			if id, ok := companyIDs[c.Company]; ok {
				m.CompanyID = &id
			}
			q := tx.Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "email"}}, DoNothing: true}).Create(&m)
			if q.Error != nil {
				return fmt.Errorf("contact %q: %w", c.Email, q.Error)
			}
			res.Contacts += int(q.RowsAffected)
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	logging.L().Info().
		Int("companies", res.Companies).
		Int("organizations", res.Organizations).
		Int("contacts", res.Contacts).
		Msg("✅ seed finished")
	return res, nil
}

func upsertByName(tx *gorm.DB, table, name string, create func() (int64, error)) (int64, bool, error) {
	var ids []int64
	if err := tx.Table(table).Where("name = ?", name).Limit(1).Pluck("id", &ids).Error; err != nil {
		return 0, false, err
	}
	if len(ids) > 0 {
		logging.L().Debug().Str("table", table).Str("name", name).Msg("already present, skipping")
		return ids[0], false, nil
	}
	id, err := create()
	return id, err == nil, err
}
