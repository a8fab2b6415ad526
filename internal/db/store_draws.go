package db

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

const (
	// MinNumber and MaxNumber bound the Lotto Max number universe.
	MinNumber = 1
	MaxNumber = 50

	// LatestDrawsLimit is the fixed page size of the winning-numbers listing.
	LatestDrawsLimit = 10
)

const dateLayout = "2006-01-02"

// Date is a calendar date serialized as YYYY-MM-DD.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return Date{t}, nil
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return fmt.Errorf("invalid date %s", b)
	}
	parsed, err := ParseDate(string(b[1 : len(b)-1]))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

// Scan accepts driver dates as well as the text form SQLite returns for
// aggregates such as MAX(draw_date).
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		y, m, day := v.Date()
		*d = NewDate(y, m, day)
		return nil
	case string:
		return d.scanText(v)
	case []byte:
		return d.scanText(string(v))
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}

func (d *Date) scanText(s string) error {
	if len(s) < len(dateLayout) {
		return fmt.Errorf("invalid date %q", s)
	}
	parsed, err := ParseDate(s[:len(dateLayout)])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Draw is one row of lotto_max_results.
type Draw struct {
	DrawDate    Date `json:"draw_date" swaggertype:"string" format:"date"`
	Number1     int  `json:"number1"`
	Number2     int  `json:"number2"`
	Number3     int  `json:"number3"`
	Number4     int  `json:"number4"`
	Number5     int  `json:"number5"`
	Number6     int  `json:"number6"`
	Number7     int  `json:"number7"`
	BonusNumber int  `json:"bonus_number"`
}

// FrequencyRow is the appearance count of one number across all draws.
type FrequencyRow struct {
	Number       int   `json:"number"`
	Count        int   `json:"count"`
	LastDrawDate *Date `json:"last_draw_date" swaggertype:"string" format:"date" extensions:"x-nullable"`
}

type NumberFrequency struct {
	Freq int `json:"freq"`
}

// matchAnySlot is true when the bound number equals any of the eight drawn slots.
const matchAnySlot = "IN (r.number1, r.number2, r.number3, r.number4, r.number5, r.number6, r.number7, r.bonus_number)"

const drawColumns = "draw_date, number1, number2, number3, number4, number5, number6, number7, bonus_number"

// LatestDraws returns the most recent draws, newest first. Draws sharing a
// date come back in whatever order the database yields them.
func (s *Store) LatestDraws(ctx context.Context, limit int) ([]Draw, error) {
	rows, err := s.db.QueryContext(ctx,
		s.rebind("SELECT "+drawColumns+" FROM lotto_max_results ORDER BY draw_date DESC LIMIT ?"), limit)
	if err != nil {
		return nil, fmt.Errorf("query latest draws: %w", err)
	}
	defer func() { _ = rows.Close() }()

	draws := make([]Draw, 0, limit)
	for rows.Next() {
		var d Draw
		if err := rows.Scan(&d.DrawDate, &d.Number1, &d.Number2, &d.Number3, &d.Number4,
			&d.Number5, &d.Number6, &d.Number7, &d.BonusNumber); err != nil {
			return nil, fmt.Errorf("scan draw: %w", err)
		}
		draws = append(draws, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate draws: %w", err)
	}
	return draws, nil
}

func (s *Store) numberStatsQuery() string {
	if s.dialect == DialectPostgres {
		return `
		SELECT n.number, COUNT(r.draw_date), MAX(r.draw_date)
		FROM generate_series(?::int, ?::int) AS n(number)
		LEFT JOIN lotto_max_results r ON n.number ` + matchAnySlot + `
		GROUP BY n.number
		ORDER BY n.number`
	}
	return `
		WITH RECURSIVE n(number) AS (
			SELECT ? UNION ALL SELECT number + 1 FROM n WHERE number < ?
		)
		SELECT n.number, COUNT(r.draw_date), MAX(r.draw_date)
		FROM n
		LEFT JOIN lotto_max_results r ON n.number ` + matchAnySlot + `
		GROUP BY n.number
		ORDER BY n.number`
}

// NumberStats returns one row per number in [MinNumber, MaxNumber], including
// numbers that were never drawn.
func (s *Store) NumberStats(ctx context.Context) ([]FrequencyRow, error) {
	rows, err := s.db.QueryContext(ctx, s.rebind(s.numberStatsQuery()), MinNumber, MaxNumber)
	if err != nil {
		return nil, fmt.Errorf("query number stats: %w", err)
	}
	defer func() { _ = rows.Close() }()

	stats := make([]FrequencyRow, 0, MaxNumber-MinNumber+1)
	for rows.Next() {
		var row FrequencyRow
		if err := rows.Scan(&row.Number, &row.Count, &row.LastDrawDate); err != nil {
			return nil, fmt.Errorf("scan number stats: %w", err)
		}
		stats = append(stats, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate number stats: %w", err)
	}
	return stats, nil
}

// NumberFrequency counts the draws containing n in any slot.
func (s *Store) NumberFrequency(ctx context.Context, n int) (NumberFrequency, error) {
	var f NumberFrequency
	err := s.db.QueryRowContext(ctx,
		s.rebind("SELECT COUNT(*) FROM lotto_max_results r WHERE ? "+matchAnySlot), n).Scan(&f.Freq)
	if errors.Is(err, sql.ErrNoRows) {
		return NumberFrequency{}, ErrNoData
	}
	if err != nil {
		return NumberFrequency{}, fmt.Errorf("query number frequency: %w", err)
	}
	return f, nil
}
