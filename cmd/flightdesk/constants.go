package main

// Valid export formats.
var validFormats = []string{"json", "csv", "markdown"}

// Valid import formats.
var importFormats = []string{"json", "csv", "auto"}
