package models

// UserProfile defines the structure for user profiles
type UserProfile struct {
	UserHandle string `dynamodbav:"userHandle" json:"userHandle"` // Partition Key, stable Telegram identity
	ChatID     int64  `dynamodbav:"chatId" json:"chatId"`         // Chat the bot delivers alerts to
	Name       string `dynamodbav:"name" json:"name"`
	Bio        string `dynamodbav:"bio,omitempty" json:"bio,omitempty"`
	PhotoKey   string `dynamodbav:"photoKey,omitempty" json:"photoKey,omitempty"` // S3 object key of the profile photo
	CreatedAt  string `dynamodbav:"createdAt" json:"createdAt"`
}

// UserProfilesTable is the DynamoDB table name for user profiles
const UserProfilesTable = "UserProfiles"
