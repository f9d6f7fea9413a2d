// File: store/schema.go
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/lib/pq"
)

// Kind says how a JSON field is stored in its column.
type Kind int

const (
	KindText Kind = iota
	KindInt
	KindFloat
	KindBool
	// KindJSON stores nested objects and non-string lists as a JSON document.
	KindJSON
	// KindList stores a string list as TEXT[] on PostgreSQL.
	KindList
)

// Column maps one top-level JSON field of a record to a table column.
type Column struct {
	Field string
	Name  string
	Kind  Kind
}

// Table describes how one record type is laid out. id, created_at and
// updated_at are implicit.
type Table struct {
	Name    string
	OrderBy string
	Columns []Column
}

func col(field string, kind Kind) Column {
	return Column{Field: field, Name: snakeCase(field), Kind: kind}
}

func snakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// columnFor finds the column behind a JSON field name, ignoring case.
func (t Table) columnFor(field string) (Column, bool) {
	for _, c := range t.Columns {
		if strings.EqualFold(c.Field, field) {
			return c, true
		}
	}
	return Column{}, false
}

func (t Table) columnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

func (t Table) orderBy() string {
	if t.OrderBy == "" {
		return "id ASC"
	}
	return t.OrderBy
}

// ------------- DDL -------------

func (db *DB) columnType(kind Kind) string {
	pg := db.IsPostgres()
	switch kind {
	case KindInt:
		if pg {
			return "BIGINT"
		}
		return "INTEGER"
	case KindFloat:
		if pg {
			return "DOUBLE PRECISION"
		}
		return "REAL"
	case KindBool:
		return "BOOLEAN"
	case KindJSON:
		if pg {
			return "JSONB"
		}
		return "TEXT"
	case KindList:
		if pg {
			return "TEXT[]"
		}
		return "TEXT"
	default:
		return "TEXT"
	}
}

// createTableSQL renders the CREATE TABLE statement for t. A singleton
// table keeps a fixed id instead of a generated one.
func (db *DB) createTableSQL(t Table, singleton bool) string {
	var defs []string
	switch {
	case singleton:
		defs = append(defs, "id INTEGER PRIMARY KEY")
	case db.IsPostgres():
		defs = append(defs, "id BIGSERIAL PRIMARY KEY")
	default:
		defs = append(defs, "id INTEGER PRIMARY KEY AUTOINCREMENT")
	}
	for _, c := range t.Columns {
		defs = append(defs, c.Name+" "+db.columnType(c.Kind))
	}
	stamp := "TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP"
	if db.IsPostgres() {
		stamp = "TIMESTAMPTZ NOT NULL DEFAULT NOW()"
	}
	defs = append(defs, "created_at "+stamp, "updated_at "+stamp)
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n\t%s\n)", t.Name, strings.Join(defs, ",\n\t"))
}

// ------------- encoding -------------

// columnArg converts the JSON value of a field into a driver argument.
// Missing and null values become NULL.
func (db *DB) columnArg(c Column, raw json.RawMessage) (any, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	switch c.Kind {
	case KindText:
		var s string
		err := json.Unmarshal(raw, &s)
		return s, err
	case KindInt:
		var n int64
		err := json.Unmarshal(raw, &n)
		return n, err
	case KindFloat:
		var f float64
		err := json.Unmarshal(raw, &f)
		return f, err
	case KindBool:
		var v bool
		err := json.Unmarshal(raw, &v)
		return v, err
	case KindList:
		var list []string
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, err
		}
		if db.IsPostgres() {
			return pq.Array(list), nil
		}
		return string(raw), nil
	default:
		return string(raw), nil
	}
}

// recordArgs returns one argument per column of t, in column order.
func (db *DB) recordArgs(t Table, fields map[string]json.RawMessage) ([]any, error) {
	args := make([]any, 0, len(t.Columns))
	for _, c := range t.Columns {
		arg, err := db.columnArg(c, fields[c.Field])
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", t.Name, c.Name, err)
		}
		args = append(args, arg)
	}
	return args, nil
}

// ------------- decoding -------------

// timeValue scans timestamps from drivers that hand back time.Time, text
// or bytes.
type timeValue struct {
	Time  time.Time
	Valid bool
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999 -0700 MST",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
}

func (v *timeValue) Scan(src any) error {
	switch t := src.(type) {
	case nil:
		v.Valid = false
		return nil
	case time.Time:
		v.Time, v.Valid = t.UTC(), true
		return nil
	case string:
		return v.parse(t)
	case []byte:
		return v.parse(string(t))
	default:
		return fmt.Errorf("cannot scan %T into timestamp", src)
	}
}

func (v *timeValue) parse(s string) error {
	s = strings.TrimSpace(s)
	// Strip a monotonic clock suffix left by time.Time.String.
	if i := strings.Index(s, " m="); i > 0 {
		s = s[:i]
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			v.Time, v.Valid = t.UTC(), true
			return nil
		}
	}
	return fmt.Errorf("unrecognized timestamp %q", s)
}

// rowDecoder owns the scan targets for one row of a table.
type rowDecoder struct {
	table   Table
	id      int64
	created timeValue
	updated timeValue
	values  []any
}

func (db *DB) newRowDecoder(t Table) *rowDecoder {
	d := &rowDecoder{table: t, values: make([]any, len(t.Columns))}
	for i, c := range t.Columns {
		switch {
		case c.Kind == KindInt:
			d.values[i] = new(sql.NullInt64)
		case c.Kind == KindFloat:
			d.values[i] = new(sql.NullFloat64)
		case c.Kind == KindBool:
			d.values[i] = new(sql.NullBool)
		case c.Kind == KindList && db.IsPostgres():
			d.values[i] = new(pq.StringArray)
		default:
			d.values[i] = new(sql.NullString)
		}
	}
	return d
}

// dest returns the scan targets for "id, created_at, updated_at, columns...".
func (d *rowDecoder) dest() []any {
	out := make([]any, 0, len(d.values)+3)
	out = append(out, &d.id, &d.created, &d.updated)
	return append(out, d.values...)
}

// fields rebuilds the JSON field map of the scanned row. NULL columns are
// left out so the record keeps its zero value.
func (d *rowDecoder) fields() (map[string]json.RawMessage, error) {
	out := map[string]json.RawMessage{
		"id": json.RawMessage(strconv.FormatInt(d.id, 10)),
	}
	if err := putJSON(out, "createdAt", d.created.Time, d.created.Valid); err != nil {
		return nil, err
	}
	if err := putJSON(out, "updatedAt", d.updated.Time, d.updated.Valid); err != nil {
		return nil, err
	}
	for i, c := range d.table.Columns {
		var err error
		switch v := d.values[i].(type) {
		case *sql.NullInt64:
			err = putJSON(out, c.Field, v.Int64, v.Valid)
		case *sql.NullFloat64:
			err = putJSON(out, c.Field, v.Float64, v.Valid)
		case *sql.NullBool:
			err = putJSON(out, c.Field, v.Bool, v.Valid)
		case *pq.StringArray:
			err = putJSON(out, c.Field, []string(*v), *v != nil)
		case *sql.NullString:
			if !v.Valid {
				continue
			}
			if c.Kind == KindText {
				err = putJSON(out, c.Field, v.String, true)
			} else if json.Valid([]byte(v.String)) {
				out[c.Field] = json.RawMessage(v.String)
			} else {
				err = fmt.Errorf("column %s holds invalid JSON", c.Name)
			}
		}
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func putJSON(out map[string]json.RawMessage, field string, v any, valid bool) error {
	if !valid {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	out[field] = data
	return nil
}

// decodeRow scans the current row into a T.
func decodeRow[T any](db *DB, t Table, scan func(dest ...any) error) (T, error) {
	var out T
	d := db.newRowDecoder(t)
	if err := scan(d.dest()...); err != nil {
		return out, err
	}
	fields, err := d.fields()
	if err != nil {
		return out, err
	}
	data, err := json.Marshal(fields)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("decode %s row: %w", t.Name, err)
	}
	return out, nil
}
