// Package identity stores user records whose national ID number is kept
// encrypted at rest with a fieldcrypt.Cipher.
//
// FieldAdapter is the only code that touches the national ID. On write it
// seals the plaintext into User.EncryptedNationalID; on read it reveals it
// and reports false when nothing is stored or when the stored envelope
// cannot be decrypted. Read failures are logged with the user ID and the
// failure kind, never with the envelope or the plaintext.
//
// Service builds registration, lookup, profile updates, account
// enable/disable and authentication on top of a Storage. Profile updates never
// touch the stored national ID. Three backends are provided: MemoryStorage, PostgresStorage
// (schema in Migrations) and MongoStorage.
//
// # Usage
//
//	c, err := identity.NewCipher(env, cryptCfg, log)
//	if err != nil {
//	    return err
//	}
//
//	svc := identity.NewService(
//	    identity.NewPostgresStorage(pool),
//	    identity.NewFieldAdapter(c, log),
//	    identity.WithLogger(log),
//	)
//
//	u, err := svc.Register(ctx, identity.RegisterInput{
//	    Email:      "asha@example.com",
//	    Username:   "asha",
//	    FirstName:  "Asha",
//	    LastName:   "Rao",
//	    Password:   "correct horse",
//	    NationalID: "123456789012",
//	})
//
//	profile, err := svc.GetProfile(ctx, u.ID)
//	if profile.NationalIDAvailable {
//	    fmt.Println(profile.NationalID)
//	}
//
// # Errors
//
// ErrUserNotFound, ErrEmailTaken, ErrInvalidCredentials, ErrAccountDisabled,
// ErrInvalidInput and ErrInsecureKeyNotAllowed are matched with errors.Is. Validation failures
// join ErrInvalidInput with validator.ValidationErrors.
package identity
