package request

// UpdateReturnStatusRequest moves a persisted return along the operator
// lifecycle.
type UpdateReturnStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Note   string `json:"note"`
}
