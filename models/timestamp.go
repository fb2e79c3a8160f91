package models

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// sqlDateTimeLayout is the legacy server-side representation
// ("2006-01-02 15:04:05", implicitly UTC). Older backends exchanged
// timestamps in this form while clients used epoch milliseconds;
// Timestamp exists to collapse both into one comparable value at the
// wire and storage boundaries.
const sqlDateTimeLayout = "2006-01-02 15:04:05"

// Timestamp is an instant normalized to UTC epoch milliseconds.
//
// All record comparisons in the merge resolver operate on this type, so
// mixed timestamp representations never reach the decision logic. JSON
// marshals as an integer; unmarshaling additionally accepts legacy SQL
// DATETIME strings and RFC 3339 strings.
type Timestamp int64

// Now returns the current instant truncated to millisecond resolution.
func Now() Timestamp {
	return Timestamp(time.Now().UnixMilli())
}

// TimestampFromTime converts t to a Timestamp, truncating to milliseconds.
func TimestampFromTime(t time.Time) Timestamp {
	return Timestamp(t.UnixMilli())
}

// Time returns the instant as a time.Time in UTC.
func (t Timestamp) Time() time.Time {
	return time.UnixMilli(int64(t)).UTC()
}

// After reports whether t is strictly later than other.
func (t Timestamp) After(other Timestamp) bool {
	return t > other
}

// IsZero reports whether the timestamp carries no instant.
func (t Timestamp) IsZero() bool {
	return t == 0
}

func (t Timestamp) String() string {
	return t.Time().Format(time.RFC3339Nano)
}

// MarshalJSON encodes the timestamp as an integer number of epoch
// milliseconds.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(int64(t), 10)), nil
}

// UnmarshalJSON accepts an integer epoch-millisecond value, a SQL
// DATETIME string, or an RFC 3339 string. String forms are interpreted
// as UTC.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == `""` {
		*t = 0
		return nil
	}

	if !strings.HasPrefix(s, `"`) {
		ms, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("parse timestamp %q: %w", s, err)
		}
		*t = Timestamp(ms)
		return nil
	}

	unquoted := strings.Trim(s, `"`)
	parsed, err := parseTimeString(unquoted)
	if err != nil {
		return err
	}
	*t = TimestampFromTime(parsed)
	return nil
}

// Scan implements sql.Scanner. Columns may hold epoch milliseconds
// (canonical schema), a time value, or a legacy DATETIME string.
func (t *Timestamp) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*t = 0
		return nil
	case int64:
		*t = Timestamp(v)
		return nil
	case time.Time:
		*t = TimestampFromTime(v)
		return nil
	case []byte:
		return t.scanString(string(v))
	case string:
		return t.scanString(v)
	default:
		return fmt.Errorf("cannot scan %T into Timestamp", src)
	}
}

func (t *Timestamp) scanString(s string) error {
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		*t = Timestamp(ms)
		return nil
	}

	parsed, err := parseTimeString(s)
	if err != nil {
		return err
	}
	*t = TimestampFromTime(parsed)
	return nil
}

// Value implements driver.Valuer, storing epoch milliseconds.
func (t Timestamp) Value() (driver.Value, error) {
	return int64(t), nil
}

func parseTimeString(s string) (time.Time, error) {
	if parsed, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return parsed, nil
	}
	parsed, err := time.ParseInLocation(sqlDateTimeLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return parsed, nil
}
