package models

type Message struct {
	MessageID  string `json:"messageid" bson:"messageid"`
	GroupID    string `json:"group_id" bson:"group_id"`
	SenderID   string `json:"sender_id" bson:"sender_id"`
	SenderName string `json:"sender_name" bson:"sender_name"`
	Content    string `json:"message" bson:"message"`
	Timestamp  int64  `json:"timestamp" bson:"timestamp"`
}
