package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"mentoring_backend/internals/features/contacts/contacts/model"
	helper "mentoring_backend/internals/helpers"
)

// Filter is the AND-combined predicate shared by the list and count queries.
type Filter struct {
	Type       model.ContactType
	Search     string
	Status     string
	FieldValue string
}

// Store is the storage surface the contact service needs.
type Store interface {
	Transaction(ctx context.Context, fn func(tx Store) error) error

	List(ctx context.Context, f Filter, limit, offset int) ([]model.ContactRow, error)
	Count(ctx context.Context, f Filter) (int64, error)
	FindByID(ctx context.Context, t model.ContactType, id int64) (*model.ContactRow, error)
	DistinctDetailValues(ctx context.Context, t model.ContactType, field string) ([]string, error)
	RelatedContacts(ctx context.Context, t model.ContactType, id int64) ([]model.RelatedContact, error)

	EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error)
	CompanyExists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, m *model.ContactModel) error
	Update(ctx context.Context, t model.ContactType, id int64, up map[string]any) (int64, error)
	Delete(ctx context.Context, t model.ContactType, id int64) (int64, error)
	DeleteRelations(ctx context.Context, contactID int64) (int64, error)
}

type ContactRepository struct {
	DB *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{DB: db}
}

func (r *ContactRepository) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&ContactRepository{DB: tx})
	})
}

/* ===================== Queries ===================== */

const contactSelect = `
SELECT c.*, pc.name AS company_name
FROM contacts c
LEFT JOIN partner_companies pc ON pc.id = c.company_id`

// buildWhere renders the filter as a WHERE clause with positional args. The detail
// field name comes from model.ContactType, never from input.
func buildWhere(f Filter) (string, []any) {
	clauses := []string{"c.type = ?"}
	args := []any{string(f.Type)}
	field := f.Type.SearchField()

	if s := strings.TrimSpace(f.Search); s != "" {
		like := "%" + helper.EscapeLike(s) + "%"
		clauses = append(clauses, fmt.Sprintf(
			"(c.name ILIKE ? OR c.email ILIKE ? OR c.details->>'%s' ILIKE ?)", field))
		args = append(args, like, like, like)
	}
	if f.Status != "" {
		clauses = append(clauses, "c.status = ?")
		args = append(args, f.Status)
	}
	if f.FieldValue != "" {
		clauses = append(clauses, fmt.Sprintf("c.details->>'%s' = ?", field))
		args = append(args, f.FieldValue)
	}
	return "WHERE " + strings.Join(clauses, " AND "), args
}

func (r *ContactRepository) List(ctx context.Context, f Filter, limit, offset int) ([]model.ContactRow, error) {
	where, args := buildWhere(f)
	q := contactSelect + "\n" + where + "\nORDER BY c.created_at DESC, c.id DESC\nLIMIT ? OFFSET ?"
	args = append(args, limit, offset)

	var rows []model.ContactRow
	if err := r.DB.WithContext(ctx).Raw(q, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ContactRepository) Count(ctx context.Context, f Filter) (int64, error) {
	where, args := buildWhere(f)
	var total int64
	err := r.DB.WithContext(ctx).Raw("SELECT COUNT(*) FROM contacts c "+where, args...).Scan(&total).Error
	return total, err
}

// FindByID returns nil, nil when no contact of that type has the id.
func (r *ContactRepository) FindByID(ctx context.Context, t model.ContactType, id int64) (*model.ContactRow, error) {
	var rows []model.ContactRow
	err := r.DB.WithContext(ctx).
		Raw(contactSelect+"\nWHERE c.id = ? AND c.type = ?\nLIMIT 1", id, string(t)).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (r *ContactRepository) DistinctDetailValues(ctx context.Context, t model.ContactType, field string) ([]string, error) {
	q := fmt.Sprintf(`
SELECT DISTINCT TRIM(c.details->>'%[1]s') AS value
FROM contacts c
WHERE c.type = ?
  AND c.details->>'%[1]s' IS NOT NULL
  AND TRIM(c.details->>'%[1]s') <> ''`, field)

	var values []string
	if err := r.DB.WithContext(ctx).Raw(q, string(t)).Scan(&values).Error; err != nil {
		return nil, err
	}
	return values, nil
}

// RelatedContacts lists a mentor's mentees or a mentee's mentors.
func (r *ContactRepository) RelatedContacts(ctx context.Context, t model.ContactType, id int64) ([]model.RelatedContact, error) {
	var own, other, focus string
	switch t {
	case model.ContactTypeMentor:
		own, other, focus = "mentor_id", "mentee_id", model.ContactTypeMentee.SearchField()
	case model.ContactTypeMentee:
		own, other, focus = "mentee_id", "mentor_id", model.ContactTypeMentor.SearchField()
	default:
		return nil, nil
	}

	q := fmt.Sprintf(`
SELECT c.id, c.name, c.email, c.status, c.details->>'%s' AS focus,
       r.id AS relation_id, r.status AS relation_status, r.start_date, r.goals
FROM mentor_mentee_relations r
JOIN contacts c ON c.id = r.%s
WHERE r.%s = ?
ORDER BY r.created_at DESC, r.id DESC`, focus, other, own)

	var rows []model.RelatedContact
	if err := r.DB.WithContext(ctx).Raw(q, id).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

/* ===================== Mutations ===================== */

func (r *ContactRepository) EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error) {
	var taken bool
	err := r.DB.WithContext(ctx).
		Raw("SELECT EXISTS (SELECT 1 FROM contacts WHERE email = ? AND id <> ?)", email, excludeID).
		Scan(&taken).Error
	return taken, err
}

func (r *ContactRepository) CompanyExists(ctx context.Context, id int64) (bool, error) {
	var ok bool
	err := r.DB.WithContext(ctx).
		Raw("SELECT EXISTS (SELECT 1 FROM partner_companies WHERE id = ?)", id).
		Scan(&ok).Error
	return ok, err
}

func (r *ContactRepository) Create(ctx context.Context, m *model.ContactModel) error {
	return r.DB.WithContext(ctx).Create(m).Error
}

func (r *ContactRepository) Update(ctx context.Context, t model.ContactType, id int64, up map[string]any) (int64, error) {
	res := r.DB.WithContext(ctx).
		Model(&model.ContactModel{}).
		Where("id = ? AND type = ?", id, string(t)).
		Updates(up)
	return res.RowsAffected, res.Error
}

func (r *ContactRepository) Delete(ctx context.Context, t model.ContactType, id int64) (int64, error) {
	res := r.DB.WithContext(ctx).Exec("DELETE FROM contacts WHERE id = ? AND type = ?", id, string(t))
	return res.RowsAffected, res.Error
}

func (r *ContactRepository) DeleteRelations(ctx context.Context, contactID int64) (int64, error) {
	res := r.DB.WithContext(ctx).
		Exec("DELETE FROM mentor_mentee_relations WHERE mentor_id = ? OR mentee_id = ?", contactID, contactID)
	return res.RowsAffected, res.Error
}
