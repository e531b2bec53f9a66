package httpx

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Page: окно выборки для списочных ручек.
type Page struct {
	Limit  int
	Offset int
}

// ClampInt: ограничение значения v в диапазоне [lo, hi].
func ClampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// ParsePage читает limit/offset из query. Отсутствующий параметр берёт дефолт,
// limit сверх maxLimit обрезается, нечисловое или отрицательное значение: ошибка.
func ParsePage(c *gin.Context, defaultLimit, maxLimit int) (Page, error) {
	p := Page{Limit: defaultLimit}

	if raw, ok := c.GetQuery("limit"); ok {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			return Page{}, fmt.Errorf("limit must be a positive integer, got %q", raw)
		}
		p.Limit = ClampInt(v, 1, maxLimit)
	}
	if raw, ok := c.GetQuery("offset"); ok {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return Page{}, fmt.Errorf("offset must be a non-negative integer, got %q", raw)
		}
		p.Offset = v
	}
	return p, nil
}
