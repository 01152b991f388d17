package domain

import "encoding/json"

// Event is the envelope delivered to the function for one invocation.
type Event struct {
	Records []LambdaRecord `json:"Records"`
}

func ParseEvent(data []byte) (Event, error) {
	var event Event
	err := json.Unmarshal(data, &event)
	if err != nil {
		return Event{}, err
	}

	return event, nil
}

// Keys lists object keys in delivery order.
func (e Event) Keys() []string {
	keys := make([]string, 0, len(e.Records))
	for _, record := range e.Records {
		keys = append(keys, record.ObjectKey())
	}

	return keys
}
