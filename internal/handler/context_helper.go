package handler

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/institute-dashboard-api/internal/service"
	appErrors "github.com/noah-isme/institute-dashboard-api/pkg/errors"
)

const queryDateLayout = "2006-01-02"

// dashboardQueryFromContext reads range, start and end. Dates are calendar days (YYYY-MM-DD).
func dashboardQueryFromContext(c *gin.Context) (service.DashboardQuery, error) {
	query := service.DashboardQuery{Range: strings.TrimSpace(c.Query("range"))}
	for _, field := range []struct {
		name string
		dest **time.Time
	}{{"start", &query.Start}, {"end", &query.End}} {
		raw := strings.TrimSpace(c.Query(field.name))
		if raw == "" {
			continue
		}
		parsed, err := time.Parse(queryDateLayout, raw)
		if err != nil {
			return query, appErrors.Clone(appErrors.ErrValidation, "invalid "+field.name+" date, expected YYYY-MM-DD")
		}
		*field.dest = &parsed
	}
	return query, nil
}

func listQueryFromContext(c *gin.Context) service.ListQuery {
	return service.ListQuery{
		Search: c.Query("search"),
		Sort:   c.Query("sort"),
		Order:  c.Query("order"),
	}
}
