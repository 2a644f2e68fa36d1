// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/numbond/ent/childprofile"
)

// ChildProfile is the model entity for the ChildProfile schema.
type ChildProfile struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Stable identifier, typically the lowercased name
	ChildID string `json:"child_id,omitempty"`
	// Display name
	Name string `json:"name,omitempty"`
	// Difficulty level the next session starts at
	CurrentLevel int `json:"current_level,omitempty"`
	// Numbers biased into problem generation
	FavoriteNumbers []int `json:"favorite_numbers,omitempty"`
	// Whether the next session starts in review mode
	ReviewMode bool `json:"review_mode,omitempty"`
	// Lifetime attempt count; survives attempt-log truncation
	TotalAttempts int `json:"total_attempts,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ChildProfile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case childprofile.FieldFavoriteNumbers:
			values[i] = new([]byte)
		case childprofile.FieldReviewMode:
			values[i] = new(sql.NullBool)
		case childprofile.FieldID, childprofile.FieldCurrentLevel, childprofile.FieldTotalAttempts:
			values[i] = new(sql.NullInt64)
		case childprofile.FieldChildID, childprofile.FieldName:
			values[i] = new(sql.NullString)
		case childprofile.FieldCreatedAt, childprofile.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ChildProfile fields.
func (_m *ChildProfile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case childprofile.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case childprofile.FieldChildID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field child_id", values[i])
			} else if value.Valid {
				_m.ChildID = value.String
			}
		case childprofile.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case childprofile.FieldCurrentLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_level", values[i])
			} else if value.Valid {
				_m.CurrentLevel = int(value.Int64)
			}
		case childprofile.FieldFavoriteNumbers:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field favorite_numbers", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FavoriteNumbers); err != nil {
					return fmt.Errorf("unmarshal field favorite_numbers: %w", err)
				}
			}
		case childprofile.FieldReviewMode:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field review_mode", values[i])
			} else if value.Valid {
				_m.ReviewMode = value.Bool
			}
		case childprofile.FieldTotalAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_attempts", values[i])
			} else if value.Valid {
				_m.TotalAttempts = int(value.Int64)
			}
		case childprofile.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case childprofile.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ChildProfile.
// This includes values selected through modifiers, order, etc.
func (_m *ChildProfile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ChildProfile.
// Note that you need to call ChildProfile.Unwrap() before calling this method if this ChildProfile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ChildProfile) Update() *ChildProfileUpdateOne {
	return NewChildProfileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ChildProfile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ChildProfile) Unwrap() *ChildProfile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ChildProfile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ChildProfile) String() string {
	var builder strings.Builder
	builder.WriteString("ChildProfile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("child_id=")
	builder.WriteString(_m.ChildID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("current_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentLevel))
	builder.WriteString(", ")
	builder.WriteString("favorite_numbers=")
	builder.WriteString(fmt.Sprintf("%v", _m.FavoriteNumbers))
	builder.WriteString(", ")
	builder.WriteString("review_mode=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReviewMode))
	builder.WriteString(", ")
	builder.WriteString("total_attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalAttempts))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ChildProfiles is a parsable slice of ChildProfile.
type ChildProfiles []*ChildProfile
