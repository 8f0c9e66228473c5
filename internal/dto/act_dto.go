package dto

type CreateActRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	ImgURL      string `json:"imgUrl"`
	// Challenge and Location are reference strings, e.g. "/api/challenges/3".
	Challenge string `json:"challenge"`
	Location  string `json:"location"`
	// StartChain opts the act into a referral chain with a generated token.
	StartChain bool `json:"start_chain"`
}

type CreateCommentRequest struct {
	Content string `json:"content"`
	// Act is a reference string, e.g. "/api/acts/12".
	Act string `json:"act"`
}

type ContactRequest struct {
	FirstName string `json:"firstName"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
}

type CreateChallengeRequest struct {
	Title     string `json:"title"`
	Objective int    `json:"objective"`
}

type UpdateChallengeRequest struct {
	Title     *string `json:"title"`
	Objective *int    `json:"objective"`
}
