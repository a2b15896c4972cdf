package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/validator"
	"github.com/go-chi/jwtauth/v5"
)

// Clock supplies the zone and current time used for "this month" defaults.
type Clock struct {
	Location *time.Location
	Now      func() time.Time
}

func (c Clock) today() time.Time {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	loc := c.Location
	if loc == nil {
		loc = time.UTC
	}
	return now().In(loc)
}

// monthFromQuery reads ?year=&month=, defaulting each to the current month.
func (c Clock) monthFromQuery(r *http.Request) (year, month int, err error) {
	today := c.today()
	year, month = today.Year(), int(today.Month())

	var errs validator.ValidationErrors
	if v := r.URL.Query().Get("year"); v != "" {
		if year, err = strconv.Atoi(v); err != nil {
			errs = append(errs, validator.ValidationError{Field: "year", Message: "year must be a number"})
		}
	}
	if v := r.URL.Query().Get("month"); v != "" {
		if month, err = strconv.Atoi(v); err != nil {
			errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be a number"})
		}
	}

	if len(errs) > 0 {
		return 0, 0, errs
	}
	return year, month, nil
}

// currentEmployeeID returns the employee_id claim of the verified access token.
func currentEmployeeID(r *http.Request) string {
	_, claims, _ := jwtauth.FromContext(r.Context())
	employeeID, _ := claims["employee_id"].(string)
	return employeeID
}
