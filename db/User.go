package db

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rabobank/bssb/model"
	"github.com/rabobank/bssb/util"
)

// UserStore MySQL backed user service, table service_broker_user:
//
//	binding_id varchar(64) primary key, username varchar(64), password text, authorities text
//
// One user per binding id. The password is generated here and encrypted at rest.
type UserStore struct{}

func (UserStore) CreateUser(bindingId string, authorities ...string) (model.User, error) {
	user := model.User{
		Username:    bindingId,
		Password:    uuid.New().String(),
		Authorities: authorities,
	}
	encrypted, err := util.Encrypt(user.Password)
	if err != nil {
		fmt.Printf("failed to encrypt password for user %s, err: %s\n", user.Username, err)
		return model.User{}, err
	}
	db := GetDB()
	defer db.Close()
	// a create that failed halfway can leave an orphaned user behind for this binding id, replace it
	if _, err = db.Exec("delete from service_broker_user where binding_id=?", bindingId); err != nil {
		fmt.Printf("failed to delete previous user for binding %s, error: %s\n", bindingId, err)
		return model.User{}, err
	}
	_, err = db.Exec("insert into service_broker_user(binding_id, username, password, authorities) values(?,?,?,?)",
		bindingId, user.Username, encrypted, strings.Join(authorities, ","))
	if err != nil {
		fmt.Printf("failed to insert user for binding %s, error: %s\n", bindingId, err)
		return model.User{}, err
	}
	fmt.Printf("created user %s for binding %s\n", user.Username, bindingId)
	return user, nil
}

func (UserStore) DeleteUser(bindingId string) error {
	db := GetDB()
	defer db.Close()
	_, err := db.Exec("delete from service_broker_user where binding_id=?", bindingId)
	if err != nil {
		fmt.Printf("failed to delete user for binding %s, error: %s\n", bindingId, err)
	}
	return err
}
