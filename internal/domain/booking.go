package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Booking struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name"`
	Phone         string             `bson:"phone" json:"phone"`
	Email         string             `bson:"email" json:"email"`
	Purpose       string             `bson:"purpose" json:"purpose"`
	PreferredDate string             `bson:"preferredDate" json:"preferredDate"`
	PreferredTime string             `bson:"preferredTime" json:"preferredTime"`
	VisitType     string             `bson:"visitType" json:"visitType"`
	IsEmergency   bool               `bson:"isEmergency" json:"isEmergency"`
	Booked        bool               `bson:"booked" json:"booked"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}
