package main

import (
	"context"

	"github.com/pkg/errors"

	"github.com/killua-y/kanbas-fullstack-app/core"
	"github.com/killua-y/kanbas-fullstack-app/core/user"
)

// addUser updates or creates a user.User
func (cli *commandLine) addUser(uname, email, pwd string, isAdmin bool) error {
	ctx := context.Background()
	uname = core.CleanString(uname, true /* lower */)
	email = core.CleanString(email, true /* lower */)

	usr, err := cli.usrRepo.GetUserByUsernameOrEmail(ctx, uname)
	if err != nil {
		if errors.Cause(err) == user.ErrNotFound {
			usr, err = cli.usrRepo.GetUserByUsernameOrEmail(ctx, email)
		}
		if err != nil && errors.Cause(err) != user.ErrNotFound {
			return err
		}
	}
	usr.Username = uname
	usr.Email = email
	if isAdmin {
		usr.Roles = user.AllRoles
	}
	usr.IsActive = true
	if err := usr.SetPassword(pwd); err != nil {
		return err
	}
	if _, err := cli.usrRepo.UpdateOrCreateUser(ctx, usr); err != nil {
		return err
	}
	return nil
}
