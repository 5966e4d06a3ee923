package databases

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoPaginate struct {
	limit int64
	page  int64
}

func newMongoPaginate(limit, page int) *mongoPaginate {
	return &mongoPaginate{
		limit: int64(limit),
		page:  int64(page),
	}
}

// getPaginatedOpts builds the find options for one page, newest first.
func (mp *mongoPaginate) getPaginatedOpts() *options.FindOptions {
	l := mp.limit
	skip := mp.page*mp.limit - mp.limit
	fOpt := options.FindOptions{Limit: &l, Skip: &skip}
	fOpt.SetSort(bson.M{"createdAt": -1})

	return &fOpt
}

// PageBounds computes the half-open [start, end) slice bounds for a 1-based
// page over a collection of total items. Pages beyond the end yield an empty
// range, never an error.
func PageBounds(total, page, pageSize int) (start, end int) {
	if page < 1 || pageSize < 1 {
		return 0, 0
	}
	start = (page - 1) * pageSize
	if start > total {
		return total, total
	}
	end = start + pageSize
	if end > total {
		end = total
	}
	return start, end
}

// TotalPages returns ceil(total/pageSize).
func TotalPages(total int64, pageSize int) int64 {
	if pageSize < 1 {
		return 0
	}
	ps := int64(pageSize)
	return (total + ps - 1) / ps
}
