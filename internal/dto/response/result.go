package response

// Write results use the field names the web client reads:
// insertedId, matchedCount, modifiedCount, deletedCount.

type InsertResult struct {
	Acknowledged bool    `json:"acknowledged"`
	InsertedID   *string `json:"insertedId"`
}

type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

func Inserted(id string) *InsertResult {
	return &InsertResult{Acknowledged: true, InsertedID: &id}
}

func Updated(matched, modified int64) *UpdateResult {
	return &UpdateResult{Acknowledged: true, MatchedCount: matched, ModifiedCount: modified}
}

func Deleted(count int64) *DeleteResult {
	return &DeleteResult{Acknowledged: true, DeletedCount: count}
}
