package views_get

type viewsResponse struct {
	Catalog catalogState `json:"catalog"`
	Admin   adminState   `json:"admin"`
}

type catalogState struct {
	Products int          `json:"products"`
	Lookup   *lookupState `json:"lookup,omitempty"`
}

type lookupState struct {
	OrderID string  `json:"order_id"`
	Status  *string `json:"status"`
}

type adminState struct {
	Orders int              `json:"orders"`
	Drafts map[int64]string `json:"drafts"`
}
