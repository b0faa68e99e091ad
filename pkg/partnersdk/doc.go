/*
Package partnersdk is the Go client of the KidVenture Pass partner hub API.

A Client serves the public operations: health checks, invitation verify
and claim, the OAuth2 grants, password reset and the platform endpoints. Everything a
signed in partner does goes through a Session:

	client := partnersdk.NewClient("https://partners.example.com")

	session := client.NewSession()
	unsubscribe := session.OnAuthStateChange(func(ev partnersdk.AuthEvent, s *partnersdk.Session) {
		if ev == partnersdk.EventSignedOut {
			// show the sign in page
		}
	})
	defer unsubscribe()

	err := session.SignIn(ctx, email, password)
	var mfa *partnersdk.MFARequiredError
	if errors.As(err, &mfa) {
		err = session.CompleteMFA(ctx, mfa.MFAToken, code)
	}

	res, err := session.CheckIn(ctx, scannedToken)

Sessions refresh their access token shortly before it expires and emit
TOKEN_REFRESHED. A refresh the server rejects clears the session and
emits SIGNED_OUT. The account's Role is read once from the access token at
sign in.

Server errors are returned as *APIError carrying the HTTP status and the
error code of the response body.
*/
package partnersdk
