package rest

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/coinfolio/coinfolio-sync/internal/api/shared/constants"
	"github.com/coinfolio/coinfolio-sync/internal/domain"
)

// ListQueryParams holds the query parameters of the list endpoints
type ListQueryParams struct {
	Limit int `form:"limit,default=0"`
}

// Validate validates the list query parameters. Zero selects the endpoint default.
func (p *ListQueryParams) Validate() error {
	if p.Limit < 0 || p.Limit > constants.MAX_PAGE_SIZE {
		return fmt.Errorf("limit must be between 1 and %d", constants.MAX_PAGE_SIZE)
	}
	return nil
}

// MarketChartQueryParams holds the query parameters of GET /coins/:id/market-chart
type MarketChartQueryParams struct {
	Days string `form:"days,default=1"`
}

// ParseListQuery parses the list query parameters
func ParseListQuery(c *gin.Context) (*ListQueryParams, error) {
	var params ListQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	return &params, nil
}

// ParseMarketChartQuery parses the chart duration of GET /coins/:id/market-chart
func ParseMarketChartQuery(c *gin.Context) (domain.ChartDays, error) {
	var params MarketChartQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return 0, err
	}
	return domain.ParseChartDays(params.Days)
}

// parseTransactionID parses the :id path parameter of the transaction endpoints
func parseTransactionID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid transaction id %q", c.Param("id"))
	}
	return id, nil
}
