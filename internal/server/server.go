package server

// Server groups the handlers of every API area behind one router.
type Server struct {
	QuoteServer
	VendorServer
}

func NewServer(
	quoteServer QuoteServer,
	vendorServer VendorServer,
) Server {
	return Server{
		QuoteServer:  quoteServer,
		VendorServer: vendorServer,
	}
}
