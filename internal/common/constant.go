package common

// UserAgent is the fixed product-identifying header value attached to every
// outbound request to the auth and document-storage services.
const UserAgent = "inkdrop"
