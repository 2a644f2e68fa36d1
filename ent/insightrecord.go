// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/numbond/ent/insightrecord"
)

// InsightRecord is the model entity for the InsightRecord schema.
type InsightRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// position in the global event order
	Sequence int64 `json:"sequence,omitempty"`
	// UTC append time
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID assigned at generation
	InsightID string `json:"insight_id,omitempty"`
	// Profile this insight is about
	ChildID string `json:"child_id,omitempty"`
	// strength or weakness
	PatternType string `json:"pattern_type,omitempty"`
	// dimension:value bucket, or overall
	Category string `json:"category,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Message holds the value of the "message" field.
	Message string `json:"message,omitempty"`
	// Parent-facing suggestions
	ActionableSteps []string `json:"actionable_steps,omitempty"`
	// low, medium, or high
	Priority string `json:"priority,omitempty"`
	// Machine-actionable flags for the session layer
	Corrective   map[string]interface{} `json:"corrective,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*InsightRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case insightrecord.FieldActionableSteps, insightrecord.FieldCorrective:
			values[i] = new([]byte)
		case insightrecord.FieldID, insightrecord.FieldSequence:
			values[i] = new(sql.NullInt64)
		case insightrecord.FieldInsightID, insightrecord.FieldChildID, insightrecord.FieldPatternType, insightrecord.FieldCategory, insightrecord.FieldTitle, insightrecord.FieldMessage, insightrecord.FieldPriority:
			values[i] = new(sql.NullString)
		case insightrecord.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the InsightRecord fields.
func (_m *InsightRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case insightrecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case insightrecord.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case insightrecord.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case insightrecord.FieldInsightID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field insight_id", values[i])
			} else if value.Valid {
				_m.InsightID = value.String
			}
		case insightrecord.FieldChildID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field child_id", values[i])
			} else if value.Valid {
				_m.ChildID = value.String
			}
		case insightrecord.FieldPatternType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pattern_type", values[i])
			} else if value.Valid {
				_m.PatternType = value.String
			}
		case insightrecord.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case insightrecord.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case insightrecord.FieldMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message", values[i])
			} else if value.Valid {
				_m.Message = value.String
			}
		case insightrecord.FieldActionableSteps:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field actionable_steps", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ActionableSteps); err != nil {
					return fmt.Errorf("unmarshal field actionable_steps: %w", err)
				}
			}
		case insightrecord.FieldPriority:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = value.String
			}
		case insightrecord.FieldCorrective:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field corrective", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Corrective); err != nil {
					return fmt.Errorf("unmarshal field corrective: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the InsightRecord.
// This includes values selected through modifiers, order, etc.
func (_m *InsightRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this InsightRecord.
// Note that you need to call InsightRecord.Unwrap() before calling this method if this InsightRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *InsightRecord) Update() *InsightRecordUpdateOne {
	return NewInsightRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the InsightRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *InsightRecord) Unwrap() *InsightRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: InsightRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *InsightRecord) String() string {
	var builder strings.Builder
	builder.WriteString("InsightRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("insight_id=")
	builder.WriteString(_m.InsightID)
	builder.WriteString(", ")
	builder.WriteString("child_id=")
	builder.WriteString(_m.ChildID)
	builder.WriteString(", ")
	builder.WriteString("pattern_type=")
	builder.WriteString(_m.PatternType)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("message=")
	builder.WriteString(_m.Message)
	builder.WriteString(", ")
	builder.WriteString("actionable_steps=")
	builder.WriteString(fmt.Sprintf("%v", _m.ActionableSteps))
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(_m.Priority)
	builder.WriteString(", ")
	builder.WriteString("corrective=")
	builder.WriteString(fmt.Sprintf("%v", _m.Corrective))
	builder.WriteByte(')')
	return builder.String()
}

// InsightRecords is a parsable slice of InsightRecord.
type InsightRecords []*InsightRecord
