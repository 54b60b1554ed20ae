package internal

// Version is the application version, shown by the --version flag.
const Version = "0.1.0"
