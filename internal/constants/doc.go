// Package constants holds application-wide fixed values such as the ASCII
// logo and tagline.
package constants
