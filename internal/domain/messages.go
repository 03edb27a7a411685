package domain

// MessageKey identifies a user-facing message.
type MessageKey string

// Message keys shared by the service and API layers.
const (
	MsgRequired         MessageKey = "required"
	MsgInvalidEmail     MessageKey = "invalid_email"
	MsgInvalidRole      MessageKey = "invalid_role"
	MsgInvalidTxType    MessageKey = "invalid_transaction_type"
	MsgInvalidNumber    MessageKey = "invalid_number"
	MsgNegativeValue    MessageKey = "negative_value"
	MsgAmountOutOfRange MessageKey = "amount_out_of_range"
	MsgInvalidID        MessageKey = "invalid_id"
	MsgUserNotFound     MessageKey = "user_not_found"
	MsgCategoryNotFound MessageKey = "category_not_found"
	MsgAssetNotFound    MessageKey = "asset_not_found"
	MsgTxNotFound       MessageKey = "transaction_not_found"
	MsgNotFound         MessageKey = "not_found"
	MsgEmailExists      MessageKey = "email_exists"
	MsgCategoryExists   MessageKey = "category_exists"
	MsgAssetExists      MessageKey = "asset_exists"
	MsgConflict         MessageKey = "conflict"
	MsgInvalidRequest   MessageKey = "invalid_request"
	MsgInvalidLogin     MessageKey = "invalid_login"
	MsgUnexpected       MessageKey = "unexpected"
)

// messages is built once at package init and never written afterwards.
var messages = map[MessageKey]string{
	MsgRequired:         "is required",
	MsgInvalidEmail:     "must be a valid email address",
	MsgInvalidRole:      "must be one of ADMIN, MANAGER, USER",
	MsgInvalidTxType:    "must be one of ACQUISITION, DISPOSAL, ADJUSTMENT",
	MsgInvalidNumber:    "must be a number",
	MsgNegativeValue:    "must not be negative",
	MsgAmountOutOfRange: "is out of range",
	MsgInvalidID:        "must be a positive integer",
	MsgUserNotFound:     "User not found",
	MsgCategoryNotFound: "Category not found",
	MsgAssetNotFound:    "Asset not found",
	MsgTxNotFound:       "Transaction not found",
	MsgNotFound:         "Resource not found",
	MsgEmailExists:      "Email already exists",
	MsgCategoryExists:   "Category name already exists",
	MsgAssetExists:      "Asset with the same name, type and value already exists",
	MsgConflict:         "Resource already exists",
	MsgInvalidRequest:   "Invalid request format",
	MsgInvalidLogin:     "Invalid email or password",
	MsgUnexpected:       "An unexpected error occurred",
}

// Message returns the text for key, or the key itself if it has no entry.
func Message(key MessageKey) string {
	if msg, ok := messages[key]; ok {
		return msg
	}
	return string(key)
}
