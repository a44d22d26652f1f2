package constants

// Logo is the ASCII art banner printed by --logo.
const Logo = `
     _            _                 _
  __| | _____   _| |__   ___   ___ | |_
 / _` + "`" + ` |/ _ \ \ / / '_ \ / _ \ / _ \| __|
| (_| |  __/\ V /| |_) | (_) | (_) | |_
 \__,_|\___| \_/ |_.__/ \___/ \___/ \__|
`

// Tagline is printed centered beneath the logo.
const Tagline = "A fresh workspace in one command"
