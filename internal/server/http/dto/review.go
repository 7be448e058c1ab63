package dto

// ReviewResponse is the list projection of a review.
type ReviewResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Rating int    `json:"rating"`
}

// ReviewDetailResponse adds the free-text comment for detail reads.
type ReviewDetailResponse struct {
	ReviewResponse
	Comment string `json:"comment"`
}

// ReviewCreateRequest describes the creation payload. The author is
// always the caller; a user field in the payload is ignored.
type ReviewCreateRequest struct {
	Product *int64 `json:"product"`
	Name    string `json:"name"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	User    *int64 `json:"user"`
}

// ReviewUpdateRequest carries a partial patch. Product and user fields
// are accepted but have no effect: those references are immutable.
type ReviewUpdateRequest struct {
	Name    *string `json:"name"`
	Rating  *int    `json:"rating"`
	Comment *string `json:"comment"`
	Product *int64  `json:"product"`
	User    *int64  `json:"user"`
}
