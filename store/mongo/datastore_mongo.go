/*
 * Copyright (c) 2023, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */
package mongo

import (
	"context"
	"crypto/tls"
	"net"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"

	"github.com/wso2-extensions/identity-outbound-auth-hypr/model"
	"github.com/wso2-extensions/identity-outbound-auth-hypr/store"
)

const (
	DbName         = "hyprauth"
	DbSessionsColl = "sessions"

	indexSessionKey = "session_key"
	indexUpdatedTs  = "updated_ts"

	// login attempts are short lived; expired ones are swept by mongo
	defaultSessionExpiry = time.Duration(1) * time.Hour
)

type DataStoreMongo struct {
	session *mgo.Session
	expiry  time.Duration
}

func NewDataStoreMongoWithSession(s *mgo.Session) *DataStoreMongo {
	return &DataStoreMongo{
		session: s,
		expiry:  defaultSessionExpiry,
	}
}

type DataStoreMongoConfig struct {
	// MGO connection string
	ConnectionString string

	// SSL support
	SSL           bool
	SSLSkipVerify bool

	// Overwrites credentials provided in connection string if provided
	Username string
	Password string

	// session expiry driving the TTL index
	SessionExpiry time.Duration
}

func NewDataStoreMongo(config DataStoreMongoConfig) (*DataStoreMongo, error) {
	dialInfo, err := mgo.ParseURL(config.ConnectionString)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open mgo session")
	}

	// Set 10s timeout - same as set by Dial
	dialInfo.Timeout = 10 * time.Second

	if config.Username != "" {
		dialInfo.Username = config.Username
	}
	if config.Password != "" {
		dialInfo.Password = config.Password
	}

	if config.SSL {
		dialInfo.DialServer = func(addr *mgo.ServerAddr) (net.Conn, error) {
			tlsConfig := &tls.Config{}
			tlsConfig.InsecureSkipVerify = config.SSLSkipVerify

			conn, err := tls.Dial("tcp", addr.String(), tlsConfig)
			return conn, err
		}
	}

	masterSession, err := mgo.DialWithInfo(dialInfo)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open mgo session")
	}

	// Validate connection
	if err := masterSession.Ping(); err != nil {
		return nil, errors.Wrap(err, "failed to open mgo session")
	}

	// force write ack with immediate journal file fsync
	masterSession.SetSafe(&mgo.Safe{
		W: 1,
		J: true,
	})

	db := NewDataStoreMongoWithSession(masterSession)
	if config.SessionExpiry != 0 {
		db.expiry = config.SessionExpiry
	}

	if err := db.EnsureIndexes(); err != nil {
		return nil, err
	}

	return db, nil
}

// EnsureIndexes sets up the unique session key index and the TTL sweep
// on the last-update timestamp.
func (db *DataStoreMongo) EnsureIndexes() error {
	s := db.session.Copy()
	defer s.Close()
	c := s.DB(DbName).C(DbSessionsColl)

	err := c.EnsureIndex(mgo.Index{
		Key:    []string{indexSessionKey},
		Unique: true,
	})
	if err != nil {
		return errors.Wrap(err, "failed to ensure session key index")
	}

	err = c.EnsureIndex(mgo.Index{
		Key:         []string{indexUpdatedTs},
		ExpireAfter: db.expiry,
	})
	if err != nil {
		return errors.Wrap(err, "failed to ensure session expiry index")
	}

	return nil
}

func (db *DataStoreMongo) GetSession(ctx context.Context, sessionKey string) (*model.SessionState, error) {
	s := db.session.Copy()
	defer s.Close()
	c := s.DB(DbName).C(DbSessionsColl)

	res := model.SessionState{}

	err := c.Find(bson.M{indexSessionKey: sessionKey}).One(&res)
	if err != nil {
		if err == mgo.ErrNotFound {
			return nil, store.ErrSessionNotFound
		}
		return nil, errors.Wrap(err, "failed to fetch session")
	}

	return &res, nil
}

func (db *DataStoreMongo) PutSession(ctx context.Context, sess *model.SessionState) error {
	s := db.session.Copy()
	defer s.Close()
	c := s.DB(DbName).C(DbSessionsColl)

	up := *sess
	up.UpdatedTs = time.Now().UTC()

	_, err := c.Upsert(bson.M{indexSessionKey: up.SessionKey}, up)
	if err != nil {
		return errors.Wrap(err, "failed to store session")
	}

	return nil
}
