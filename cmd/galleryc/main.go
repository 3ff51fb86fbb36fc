// Package main provides the galleryc CLI, which compiles declarative image
// gallery documents into web DOM instructions or native grid descriptors.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
