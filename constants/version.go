package constants

// Version of the library.
const Version = "0.9.0"
