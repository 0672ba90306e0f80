// Package mpw is a stateless credential generator.
//
// Given a user identity, a master secret and a site description, it
// deterministically derives a site-specific password, login name or
// security answer. Nothing is stored: the same inputs reproduce the same
// output on any machine, and recovery means typing the same inputs again.
//
// Basic usage:
//
//	site, err := mpw.NewSite("example.com", mpw.WithResultType(mpw.TypeLong))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Derive takes ownership of the secret and zeroes it.
//	password, err := mpw.Derive([]byte(secret), "alice", site, mpw.AlgorithmDefault)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(password)
//
// Deriving several credentials for one user should reuse the master key,
// since the KDF deliberately takes tens to hundreds of milliseconds:
//
//	key, err := mpw.NewMasterKey(secret, "alice", mpw.AlgorithmDefault)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer key.Wipe()
//
//	login, _ := key.Result(loginSite)
//	password, _ := key.Result(passwordSite)
//
// All functions are safe for concurrent use; there is no shared state
// between derivations.
package mpw
