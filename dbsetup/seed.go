package dbsetup

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/arsurgical/hub-backend/db/sqldb"
)

// seedCatalog inserts the reference categories and the starter product
// range, but only into empty tables so re-running never duplicates rows.
func seedCatalog(ctx context.Context, client sqldb.Client) error {
	n, err := rowCount(ctx, client, "categories")
	if err != nil {
		return err
	}
	if n == 0 {
		categories := []struct{ name, description string }{
			{"Diagnostic", "Instruments for medical diagnosis"},
			{"Surgical", "General surgical instruments"},
			{"Ophthalmic", "Specialized eye surgery tools"},
			{"Orthopedic", "Bone and joint surgical tools"},
		}
		for _, c := range categories {
			if _, err = client.Query(ctx,
				"INSERT INTO categories (id, name, description) VALUES ($1, $2, $3)",
				newID(), c.name, c.description,
			); err != nil {
				return err
			}
		}
	}

	n, err = rowCount(ctx, client, "products")
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	catIDs, err := categoryIDsByName(ctx, client)
	if err != nil {
		return err
	}
	products := []struct {
		name, description, category string
		price                       float64
		stock                       int
	}{
		{"Premium Stethoscope", "High-quality acoustic stethoscope for professionals.", "Diagnostic", 120.0, 50},
		{"Surgical Scalpel Set", "Reusable stainless steel scalpel handles and blades.", "Surgical", 45.5, 200},
		{"Digital Reflex Hammer", "Electronic diagnostic hammer for reflex testing.", "Diagnostic", 85.0, 30},
		{"Hemostat Forceps", "Precision locking forceps for surgical procedures.", "Surgical", 25.99, 150},
		{"Ophthalmoscope", "Direct ophthalmoscope for retinal examination.", "Ophthalmic", 240.0, 20},
		{"Bone Saw", "Oscillating bone saw for orthopedic surgery.", "Orthopedic", 680.0, 10},
	}
	for _, p := range products {
		if _, err = client.Query(ctx,
			"INSERT INTO products (id, name, description, price, stock, category_id) VALUES ($1, $2, $3, $4, $5, $6)",
			newID(), p.name, p.description, p.price, p.stock, catIDs[p.category],
		); err != nil {
			return err
		}
	}
	return nil
}

func seedCareers(ctx context.Context, client sqldb.Client) error {
	n, err := rowCount(ctx, client, "careers")
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	salesID := newID()
	careers := []struct{ id, title, description string }{
		{salesID, "Medical Sales Representative", "Join our sales team to expand our footprint in the surgical market."},
		{newID(), "Software Engineer", "Build digital solutions for medical procurement."},
	}
	for _, c := range careers {
		if _, err = client.Query(ctx,
			"INSERT INTO careers (id, title, description) VALUES ($1, $2, $3)",
			c.id, c.title, c.description,
		); err != nil {
			return err
		}
	}

	vacancies := []struct{ position, location, salary string }{
		{"Senior Sales Executive", "New York, US", "$80k - $120k"},
		{"Product Specialist", "London, UK", "£45k - £65k"},
	}
	for _, v := range vacancies {
		if _, err = client.Query(ctx,
			"INSERT INTO vacancies (id, career_id, position, location, salary_range) VALUES ($1, $2, $3, $4, $5)",
			newID(), salesID, v.position, v.location, v.salary,
		); err != nil {
			return err
		}
	}
	return nil
}

func categoryIDsByName(ctx context.Context, client sqldb.Client) (map[string]string, error) {
	res, err := client.Query(ctx, "SELECT id, name FROM categories")
	if err != nil {
		return nil, err
	}
	ids := make(map[string]string, len(res.Rows))
	for _, row := range res.Rows {
		ids[asString(row["name"])] = asString(row["id"])
	}
	return ids, nil
}

func rowCount(ctx context.Context, q sqldb.Querier, table string) (int64, error) {
	col, err := sqldb.NewColumn(table)
	if err != nil {
		return 0, err
	}
	res, err := q.Query(ctx, fmt.Sprintf("SELECT COUNT(*) AS n FROM %s", col.Name()))
	if err != nil {
		return 0, err
	}
	if len(res.Rows) == 0 {
		return 0, nil
	}
	return asInt64(res.Rows[0]["n"]), nil
}

func newID() string { return uuid.NewString() }

// asInt64 - COUNT(*) comes back as a different Go type per engine.
func asInt64(v any) int64 {
	switch t := v.(type) {
	case int64:
		return t
	case int32:
		return int64(t)
	case int:
		return int64(t)
	case uint64:
		return int64(t)
	case float64:
		return int64(t)
	case string:
		n, _ := strconv.ParseInt(t, 10, 64)
		return n
	default:
		return 0
	}
}

func asString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []byte:
		return string(t)
	default:
		return fmt.Sprint(t)
	}
}

func firstWords(s string, n int) string {
	words := strings.Fields(s)
	if len(words) > n {
		words = words[:n]
	}
	return strings.Join(words, " ")
}
