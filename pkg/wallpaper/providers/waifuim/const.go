package waifuim

// serviceName is the name of the waifu.im image service
const serviceName = "waifu.im"

// Request parameters for the waifu.im search endpoint.
const (
	acceptVersionHeader = "Accept-Version" // acceptVersionHeader selects the API version
	orientationParam    = "orientation"    // orientationParam filters images by orientation
)
