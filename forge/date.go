package forge

// dateOperators is the catalog shared by every DateField. Relative operators
// ("is this week", "days ago") are evaluated against the engine's clock at
// solve time.
var dateOperators = map[string]*OperatorDef{
	"any": {
		Name:          "any",
		Description:   "Matches any value, including missing",
		SkipTypecheck: true,
	},
	"is_past":   {Name: "is in the past"},
	"is_future": {Name: "is in the future"},
	"days_ago": {
		Name: "days ago",
		Args: []OperatorArg{{Name: "days", Type: TypeNumber}},
	},
	"is_less_than_days_ago": {
		Name: "is less than N days ago",
		Args: []OperatorArg{{Name: "days", Type: TypeNumber}},
	},
	"is_more_than_days_ago": {
		Name: "is more than N days ago",
		Args: []OperatorArg{{Name: "days", Type: TypeNumber}},
	},
	"days_from_now": {
		Name: "days from now",
		Args: []OperatorArg{{Name: "days", Type: TypeNumber}},
	},
	"is_less_than_days_from_now": {
		Name: "is less than N days from now",
		Args: []OperatorArg{{Name: "days", Type: TypeNumber}},
	},
	"is_more_than_days_from_now": {
		Name: "is more than N days from now",
		Args: []OperatorArg{{Name: "days", Type: TypeNumber}},
	},
	"is_today":      {Name: "is today"},
	"is_this_week":  {Name: "is this week"},
	"is_this_month": {Name: "is this month"},
	"is_this_year":  {Name: "is this year"},
	"is_next_week":  {Name: "is next week"},
	"is_next_month": {Name: "is next month"},
	"is_next_year":  {Name: "is next year"},
	"is_last_week":  {Name: "is last week"},
	"is_last_month": {Name: "is last month"},
	"is_last_year":  {Name: "is last year"},
	"after": {
		Name: "after",
		Args: []OperatorArg{{Name: "date", Type: TypeDate}},
	},
	"on_or_after": {
		Name: "on or after",
		Args: []OperatorArg{{Name: "date", Type: TypeDate}},
	},
	"before": {
		Name: "before",
		Args: []OperatorArg{{Name: "date", Type: TypeDate}},
	},
	"on_or_before": {
		Name: "on or before",
		Args: []OperatorArg{{Name: "date", Type: TypeDate}},
	},
	"between": {
		Name: "between",
		Args: []OperatorArg{
			{Name: "start", Type: TypeDate},
			{Name: "end", Type: TypeDate},
		},
	},
	"not_between": {
		Name: "not between",
		Args: []OperatorArg{
			{Name: "start", Type: TypeDate},
			{Name: "end", Type: TypeDate},
		},
	},
}

// DateField is a date request or response field. Date arguments accept
// time.Time, a string representation, or a *DynamicValue of date type.
type DateField struct {
	baseField
}

func newDateField(key, description string, defaultValue any) *DateField {
	return &DateField{baseField{key: key, description: description, defaultValue: defaultValue}}
}

func (f *DateField) Kind() ValueType                    { return TypeDate }
func (f *DateField) Operators() map[string]*OperatorDef { return dateOperators }

// SetDisplayName overrides the serialized display name derived from the key.
func (f *DateField) SetDisplayName(name string) *DateField {
	f.displayName = name
	return f
}

// IsPast matches dates before the evaluation time.
func (f *DateField) IsPast() Check { return mustCheck(dateOperators, "is_past") }

// IsFuture matches dates after the evaluation time.
func (f *DateField) IsFuture() Check { return mustCheck(dateOperators, "is_future") }

// DaysAgo matches dates exactly the given number of days in the past.
func (f *DateField) DaysAgo(days any) (Check, error) {
	return buildCheck(dateOperators, "days_ago", days)
}

// IsLessThanDaysAgo matches dates within the last N days.
func (f *DateField) IsLessThanDaysAgo(days any) (Check, error) {
	return buildCheck(dateOperators, "is_less_than_days_ago", days)
}

// IsMoreThanDaysAgo matches dates more than N days in the past.
func (f *DateField) IsMoreThanDaysAgo(days any) (Check, error) {
	return buildCheck(dateOperators, "is_more_than_days_ago", days)
}

// DaysFromNow matches dates exactly the given number of days in the future.
func (f *DateField) DaysFromNow(days any) (Check, error) {
	return buildCheck(dateOperators, "days_from_now", days)
}

// IsLessThanDaysFromNow matches dates within the next N days.
func (f *DateField) IsLessThanDaysFromNow(days any) (Check, error) {
	return buildCheck(dateOperators, "is_less_than_days_from_now", days)
}

// IsMoreThanDaysFromNow matches dates more than N days in the future.
func (f *DateField) IsMoreThanDaysFromNow(days any) (Check, error) {
	return buildCheck(dateOperators, "is_more_than_days_from_now", days)
}

// IsToday matches dates on the evaluation day.
func (f *DateField) IsToday() Check { return mustCheck(dateOperators, "is_today") }

// IsThisWeek matches dates in the evaluation week.
func (f *DateField) IsThisWeek() Check { return mustCheck(dateOperators, "is_this_week") }

// IsThisMonth matches dates in the evaluation month.
func (f *DateField) IsThisMonth() Check { return mustCheck(dateOperators, "is_this_month") }

// IsThisYear matches dates in the evaluation year.
func (f *DateField) IsThisYear() Check { return mustCheck(dateOperators, "is_this_year") }

// IsNextWeek matches dates in the week after the evaluation week.
func (f *DateField) IsNextWeek() Check { return mustCheck(dateOperators, "is_next_week") }

// IsNextMonth matches dates in the month after the evaluation month.
func (f *DateField) IsNextMonth() Check { return mustCheck(dateOperators, "is_next_month") }

// IsNextYear matches dates in the year after the evaluation year.
func (f *DateField) IsNextYear() Check { return mustCheck(dateOperators, "is_next_year") }

// IsLastWeek matches dates in the week before the evaluation week.
func (f *DateField) IsLastWeek() Check { return mustCheck(dateOperators, "is_last_week") }

// IsLastMonth matches dates in the month before the evaluation month.
func (f *DateField) IsLastMonth() Check { return mustCheck(dateOperators, "is_last_month") }

// IsLastYear matches dates in the year before the evaluation year.
func (f *DateField) IsLastYear() Check { return mustCheck(dateOperators, "is_last_year") }

// After matches dates strictly after the given date.
func (f *DateField) After(date any) (Check, error) {
	return buildCheck(dateOperators, "after", date)
}

// OnOrAfter matches the given date and everything after it.
func (f *DateField) OnOrAfter(date any) (Check, error) {
	return buildCheck(dateOperators, "on_or_after", date)
}

// Before matches dates strictly before the given date.
func (f *DateField) Before(date any) (Check, error) {
	return buildCheck(dateOperators, "before", date)
}

// OnOrBefore matches the given date and everything before it.
func (f *DateField) OnOrBefore(date any) (Check, error) {
	return buildCheck(dateOperators, "on_or_before", date)
}

// Between matches dates within [start, end].
func (f *DateField) Between(start, end any) (Check, error) {
	return buildCheck(dateOperators, "between", start, end)
}

// NotBetween matches dates outside [start, end].
func (f *DateField) NotBetween(start, end any) (Check, error) {
	return buildCheck(dateOperators, "not_between", start, end)
}

// Any matches any value, including a missing one.
func (f *DateField) Any() Check { return mustCheck(dateOperators, "any") }
