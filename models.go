package rdapexpiry

// RDAP data structures per RFC 9083, trimmed to what a domain expiration
// lookup consumes.

// Link represents an RDAP link object.
type Link struct {
	Value string `json:"value,omitempty"`
	Rel   string `json:"rel,omitempty"`
	Href  string `json:"href,omitempty"`
	Type  string `json:"type,omitempty"`
	Title string `json:"title,omitempty"`
}

// Event represents an RDAP event object. Only events whose EventAction is
// "expiration" are semantically relevant to the check; everything else in
// the list is carried but ignored.
type Event struct {
	EventAction string `json:"eventAction"`
	EventDate   string `json:"eventDate"`
	EventActor  string `json:"eventActor,omitempty"`
	Links       []Link `json:"links,omitempty"`
}

// Notice represents an RDAP notice object (top-level informational messages).
type Notice struct {
	Title       string   `json:"title,omitempty"`
	Type        string   `json:"type,omitempty"`
	Description []string `json:"description,omitempty"`
	Links       []Link   `json:"links,omitempty"`
}

// DomainResponse is the RDAP domain object class, reduced to the members
// the expiration check reads.
type DomainResponse struct {
	ObjectClassName string   `json:"objectClassName"`
	Handle          string   `json:"handle,omitempty"`
	LDHName         string   `json:"ldhName,omitempty"`
	UnicodeName     string   `json:"unicodeName,omitempty"`
	Status          []string `json:"status,omitempty"`
	Events          []Event  `json:"events,omitempty"`
	Links           []Link   `json:"links,omitempty"`
	Notices         []Notice `json:"notices,omitempty"`
	Port43          string   `json:"port43,omitempty"`
	RDAPConformance []string `json:"rdapConformance,omitempty"`
}
