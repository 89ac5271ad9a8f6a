package v1

// HoldRequest asks for Count seats on a train. BookingId is optional; the
// server generates one when it is empty.
type HoldRequest struct {
	TrainId   string `json:"train_id"`
	Count     int32  `json:"count"`
	BookingId string `json:"booking_id,omitempty"`
}

type HoldReply struct {
	TrainId       string        `json:"train_id"`
	ReservationId string        `json:"reservation_id"`
	Assignments   []*Assignment `json:"assignments"`
}

// Assignment names one seat. CarriageNo is 1-based.
type Assignment struct {
	CarriageNo int32  `json:"carriage_no"`
	SeatNo     string `json:"seat_no"`
}

type ListSeatsRequest struct {
	TrainId string `json:"train_id"`
}

type ListSeatsReply struct {
	TrainId string        `json:"train_id"`
	Seats   []*Assignment `json:"seats"`
}

type GetReservationRequest struct {
	TrainId       string `json:"train_id"`
	ReservationId string `json:"reservation_id"`
}
