package httpx

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Gunvolt24/oppify/internal/domain"
	"github.com/gin-gonic/gin"
)

// QueryInt — читает целое из query; пустое/отсутствующее значение => nil.
func QueryInt(c *gin.Context, key string) (*int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %q", key, raw)
	}
	return &v, nil
}

// ParseOpportunityFilter — собирает фильтр списка из type/interest/month.
// month=0 трактуется как отсутствие фильтра.
func ParseOpportunityFilter(c *gin.Context) (domain.OpportunityFilter, error) {
	month, err := QueryInt(c, "month")
	if err != nil {
		return domain.OpportunityFilter{}, err
	}
	if month != nil && *month == 0 {
		month = nil
	}
	return domain.OpportunityFilter{
		Type:     strings.TrimSpace(c.Query("type")),
		Interest: strings.TrimSpace(c.Query("interest")),
		Month:    month,
	}, nil
}
